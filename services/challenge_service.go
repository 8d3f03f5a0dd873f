package services

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/utils"
)

type ChallengeService struct {
	db     *gorm.DB
	picker utils.Picker
}

// NewChallengeService takes the random source for challenge selection as
// a dependency so tests can pin it.
func NewChallengeService(db *gorm.DB, picker utils.Picker) *ChallengeService {
	return &ChallengeService{db: db, picker: picker}
}

// GetOrCreate returns the user's challenge for the current period,
// generating one from the health profile if this is the first fetch.
// The period anchor is today's midnight for daily challenges and Monday
// midnight of the current week for weekly ones. Losing a concurrent
// create race on (user, type, dateAssigned) falls back to a fetch.
func (s *ChallengeService) GetOrCreate(ctx context.Context, userID uint, ctype models.ChallengeType) (*models.Challenge, error) {
	anchor := utils.DayStart(time.Now())
	if ctype == models.ChallengeWeekly {
		anchor = utils.WeekStart(time.Now())
	}

	challenge, err := s.fetch(ctx, userID, ctype, anchor)
	if err == nil {
		return challenge, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var tmpl utils.ChallengeTemplate
	if ctype == models.ChallengeWeekly {
		tmpl = utils.WeeklyChallenge(profile.BMICategory, profile.Goals, s.picker)
	} else {
		tmpl = utils.DailyChallenge(profile.BMICategory, profile.Goals, s.picker)
	}

	created := models.Challenge{
		UserID:       userID,
		Type:         ctype,
		DateAssigned: anchor,
		Title:        tmpl.Title,
		Description:  tmpl.Description,
	}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.fetch(ctx, userID, ctype, anchor)
		}
		return nil, err
	}

	return &created, nil
}

// Complete marks the challenge done. The transition is one-way: a second
// completion attempt is rejected, and the guarded UPDATE keeps two
// concurrent attempts from both succeeding.
func (s *ChallengeService) Complete(ctx context.Context, userID, challengeID uint) (*models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", challengeID, userID).
		First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}

	if challenge.IsCompleted {
		return nil, ErrChallengeCompleted
	}

	res := s.db.WithContext(ctx).
		Model(&models.Challenge{}).
		Where("id = ? AND is_completed = ?", challenge.ID, false).
		Update("is_completed", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrChallengeCompleted
	}

	challenge.IsCompleted = true
	return &challenge, nil
}

type ChallengeStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`
}

// History lists challenges assigned in the last days days, newest first,
// optionally filtered by type and capped at 50 results.
func (s *ChallengeService) History(ctx context.Context, userID uint, days int, ctype *models.ChallengeType) ([]models.Challenge, ChallengeStats, error) {
	since := utils.DayStart(time.Now().AddDate(0, 0, -days))

	q := s.db.WithContext(ctx).
		Where("user_id = ? AND date_assigned >= ?", userID, since)
	if ctype != nil {
		q = q.Where("type = ?", *ctype)
	}

	var challenges []models.Challenge
	if err := q.Order("date_assigned DESC").Limit(50).Find(&challenges).Error; err != nil {
		return nil, ChallengeStats{}, err
	}

	stats := ChallengeStats{Total: len(challenges)}
	for _, c := range challenges {
		if c.IsCompleted {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	return challenges, stats, nil
}

func (s *ChallengeService) fetch(ctx context.Context, userID uint, ctype models.ChallengeType, anchor time.Time) (*models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND date_assigned = ?", userID, ctype, anchor).
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

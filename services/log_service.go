package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/utils"
)

type LogService struct{ db *gorm.DB }

func NewLogService(db *gorm.DB) *LogService { return &LogService{db: db} }

// GetOrCreateToday returns today's log for the user, creating it with
// zeroed counters on first access. A concurrent create losing the race
// on the (user, date) unique index is retried as a fetch.
func (s *LogService) GetOrCreateToday(ctx context.Context, userID uint) (*models.DailyLog, error) {
	today := utils.DayStart(time.Now())

	log, err := s.fetch(ctx, userID, today)
	if err == nil {
		return log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.DailyLog{UserID: userID, Date: today}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.fetch(ctx, userID, today)
		}
		return nil, err
	}
	created.Workouts = []models.Workout{}
	return &created, nil
}

// AddWater adds amount (ml) to today's water counter. The increment is a
// single UPDATE expression so concurrent logging calls cannot drop each
// other's additions.
func (s *LogService) AddWater(ctx context.Context, userID uint, amount float64) (*models.DailyLog, error) {
	return s.increment(ctx, userID, "water_intake", amount)
}

// AddCalories adds amount to today's calorie counter.
func (s *LogService) AddCalories(ctx context.Context, userID uint, amount float64) (*models.DailyLog, error) {
	return s.increment(ctx, userID, "calories", amount)
}

// AddWorkout appends a workout record to today's log.
func (s *LogService) AddWorkout(ctx context.Context, userID uint, name string, duration int, wtype models.WorkoutType) (*models.DailyLog, error) {
	log, err := s.GetOrCreateToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	workout := models.Workout{
		DailyLogID: log.ID,
		Name:       name,
		Duration:   duration,
		Type:       wtype,
	}
	if err := s.db.WithContext(ctx).Create(&workout).Error; err != nil {
		return nil, err
	}

	return s.fetch(ctx, userID, log.Date)
}

// AddWeight records today's weight and, when a health profile exists,
// cascades the new weight into it, rederiving bmi, bmiCategory and
// recommendedCalories. The log write is the source of truth; a missing
// profile skips the cascade without error.
func (s *LogService) AddWeight(ctx context.Context, userID uint, weight float64) (*models.DailyLog, *models.HealthProfile, error) {
	log, err := s.GetOrCreateToday(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.DailyLog{}).
		Where("id = ?", log.ID).
		Update("weight", weight).Error; err != nil {
		return nil, nil, err
	}
	log.Weight = &weight

	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log, nil, nil
		}
		return nil, nil, err
	}

	profile.Weight = weight
	profile.BMI = utils.CalcBMI(profile.Height, weight)
	profile.BMICategory = utils.BMICategoryFor(profile.BMI)
	profile.RecommendedCalories = utils.RecommendedCalories(profile.ActivityLevel, profile.Goals)
	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, nil, err
	}

	return log, &profile, nil
}

// LogsInRange returns the user's logs between start and end, normalized
// to whole days. Trend aggregation reads ascending; the generic range
// endpoint reads descending.
func (s *LogService) LogsInRange(ctx context.Context, userID uint, start, end time.Time, ascending bool) ([]models.DailyLog, error) {
	order := "date DESC"
	if ascending {
		order = "date ASC"
	}

	var logs []models.DailyLog
	err := s.db.WithContext(ctx).
		Preload("Workouts").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, utils.DayStart(start), utils.DayEnd(end)).
		Order(order).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *LogService) fetch(ctx context.Context, userID uint, date time.Time) (*models.DailyLog, error) {
	var log models.DailyLog
	err := s.db.WithContext(ctx).
		Preload("Workouts").
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) increment(ctx context.Context, userID uint, column string, amount float64) (*models.DailyLog, error) {
	log, err := s.GetOrCreateToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.DailyLog{}).
		Where("id = ?", log.ID).
		UpdateColumn(column, gorm.Expr(column+" + ?", amount)).Error; err != nil {
		return nil, err
	}

	return s.fetch(ctx, userID, log.Date)
}

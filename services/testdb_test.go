package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Aashu-1911/Fitness-traker/models"
)

// newTestDB opens an in-memory database with the same TranslateError
// setting production uses, so unique-constraint violations surface as
// gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("database handle: %v", err)
	}
	// In-memory sqlite is per-connection; cap the pool at one so every
	// query sees the same database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.HealthProfile{},
		&models.DailyLog{},
		&models.Workout{},
		&models.Challenge{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// seedProfile inserts a health profile with its derived fields already
// computed, the way ProfileService.Create would leave it.
func seedProfile(t *testing.T, db *gorm.DB, userID uint) *models.HealthProfile {
	t.Helper()

	profile := models.HealthProfile{
		UserID:              userID,
		Age:                 30,
		Gender:              models.GenderFemale,
		Height:              180,
		Weight:              75,
		ActivityLevel:       models.ActivityModerate,
		Goals:               models.GoalWeightLoss,
		HealthConditions:    []string{},
		BMI:                 23.1,
		BMICategory:         models.BMINormal,
		RecommendedCalories: 1925,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return &profile
}

package services

import (
	"context"
	"testing"

	"github.com/Aashu-1911/Fitness-traker/models"
)

// TestGetOrCreateToday_Idempotent verifies repeated calls on the same
// day return the same row instead of creating duplicates.
func TestGetOrCreateToday_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	first, err := svc.GetOrCreateToday(ctx, 1)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetOrCreateToday(ctx, 1)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("got two different logs (ids %d and %d), want one", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.DailyLog{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

// TestAddWater_AccumulatesInSingleRow verifies two water logs on the
// same day add into one row rather than producing two.
func TestAddWater_AccumulatesInSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	if _, err := svc.AddWater(ctx, 1, 500); err != nil {
		t.Fatalf("first AddWater: %v", err)
	}
	log, err := svc.AddWater(ctx, 1, 250)
	if err != nil {
		t.Fatalf("second AddWater: %v", err)
	}

	if log.WaterIntake != 750 {
		t.Errorf("waterIntake = %v, want 750", log.WaterIntake)
	}

	var count int64
	if err := db.Model(&models.DailyLog{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

// TestAddCalories_Accumulates mirrors the water path for the calorie
// counter.
func TestAddCalories_Accumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	if _, err := svc.AddCalories(ctx, 1, 600); err != nil {
		t.Fatalf("first AddCalories: %v", err)
	}
	log, err := svc.AddCalories(ctx, 1, 400)
	if err != nil {
		t.Fatalf("second AddCalories: %v", err)
	}

	if log.Calories != 1000 {
		t.Errorf("calories = %v, want 1000", log.Calories)
	}
}

// TestAddWorkout_AppendsToTodaysLog verifies workouts land on today's
// row and come back with the refetched log.
func TestAddWorkout_AppendsToTodaysLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	log, err := svc.AddWorkout(ctx, 1, "Run", 30, models.WorkoutCardio)
	if err != nil {
		t.Fatalf("AddWorkout: %v", err)
	}
	if len(log.Workouts) != 1 {
		t.Fatalf("workouts = %d, want 1", len(log.Workouts))
	}
	w := log.Workouts[0]
	if w.Name != "Run" || w.Duration != 30 || w.Type != models.WorkoutCardio {
		t.Errorf("workout = %+v, want Run/30/Cardio", w)
	}
}

// TestAddWeight_CascadesIntoProfile verifies logging a weight rederives
// the profile's bmi, category and calorie fields together.
func TestAddWeight_CascadesIntoProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	seedProfile(t, db, 1)

	log, profile, err := svc.AddWeight(ctx, 1, 90)
	if err != nil {
		t.Fatalf("AddWeight: %v", err)
	}
	if log.Weight == nil || *log.Weight != 90 {
		t.Fatalf("log weight = %v, want 90", log.Weight)
	}
	if profile == nil {
		t.Fatal("expected updated profile, got nil")
	}
	// 90 kg at 180 cm: bmi 27.8, Overweight.
	if profile.Weight != 90 || profile.BMI != 27.8 || profile.BMICategory != models.BMIOverweight {
		t.Errorf("profile = weight %v bmi %v category %q, want 90/27.8/Overweight",
			profile.Weight, profile.BMI, profile.BMICategory)
	}
}

// TestAddWeight_NoProfileSkipsCascade verifies the log write still
// succeeds for users who never created a profile.
func TestAddWeight_NoProfileSkipsCascade(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	log, profile, err := svc.AddWeight(ctx, 1, 70)
	if err != nil {
		t.Fatalf("AddWeight: %v", err)
	}
	if log.Weight == nil || *log.Weight != 70 {
		t.Errorf("log weight = %v, want 70", log.Weight)
	}
	if profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
}

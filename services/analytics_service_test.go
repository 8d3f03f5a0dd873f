package services

import (
	"testing"
	"time"

	"github.com/Aashu-1911/Fitness-traker/models"
)

// day builds a DailyLog for the given day offset, in ascending order
// when offsets increase.
func day(offset int, mut func(*models.DailyLog)) models.DailyLog {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	log := models.DailyLog{Date: base.AddDate(0, 0, offset)}
	if mut != nil {
		mut(&log)
	}
	return log
}

func withWeight(w float64) func(*models.DailyLog) {
	return func(l *models.DailyLog) { l.Weight = &w }
}

func withWorkouts(n int, minutes int, wtype models.WorkoutType) func(*models.DailyLog) {
	return func(l *models.DailyLog) {
		for i := 0; i < n; i++ {
			l.Workouts = append(l.Workouts, models.Workout{Name: "session", Duration: minutes, Type: wtype})
		}
	}
}

/* ─── Weight trend ───────────────────────────────────────────────────── */

// TestBuildWeightTrend_ExcludesMissingWeights verifies logs without a
// weight are dropped from the series rather than counted as zero.
func TestBuildWeightTrend_ExcludesMissingWeights(t *testing.T) {
	logs := []models.DailyLog{
		day(0, withWeight(80)),
		day(1, nil), // no weight logged
		day(2, withWeight(79)),
		day(3, withWeight(78.5)),
	}

	trend := buildWeightTrend(logs)

	if trend.Stats.DataPoints != 3 {
		t.Fatalf("dataPoints = %d, want 3", trend.Stats.DataPoints)
	}
	if got := trend.Stats.WeightChange; got != -1.5 {
		t.Errorf("weightChange = %v, want -1.5", got)
	}
	if trend.Stats.Trend != "decreasing" {
		t.Errorf("trend = %q, want decreasing", trend.Stats.Trend)
	}
	// mean of 80, 79, 78.5 = 79.166... -> 79.2
	if got := trend.Stats.AverageWeight; got != 79.2 {
		t.Errorf("averageWeight = %v, want 79.2", got)
	}
}

// TestBuildWeightTrend_FewPoints verifies the zero-change and empty
// cases: fewer than two points yields change 0 and trend "stable".
func TestBuildWeightTrend_FewPoints(t *testing.T) {
	empty := buildWeightTrend(nil)
	if empty.Stats.WeightChange != 0 || empty.Stats.Trend != "stable" {
		t.Errorf("empty: change=%v trend=%q, want 0/stable", empty.Stats.WeightChange, empty.Stats.Trend)
	}
	if empty.Stats.AverageWeight != 0 {
		t.Errorf("empty averageWeight = %v, want 0", empty.Stats.AverageWeight)
	}
	if empty.Stats.StartWeight != nil || empty.Stats.CurrentWeight != nil {
		t.Error("empty trend should have nil start/current weights")
	}

	single := buildWeightTrend([]models.DailyLog{day(0, withWeight(70))})
	if single.Stats.WeightChange != 0 || single.Stats.Trend != "stable" {
		t.Errorf("single point: change=%v trend=%q, want 0/stable", single.Stats.WeightChange, single.Stats.Trend)
	}
	if single.Stats.AverageWeight != 70 {
		t.Errorf("single point averageWeight = %v, want 70", single.Stats.AverageWeight)
	}
}

/* ─── Intake stats ───────────────────────────────────────────────────── */

// TestIntakeStats verifies sum and rounded mean, with zero values kept
// in the series (a logged day with 0 ml still counts toward the mean).
func TestIntakeStats(t *testing.T) {
	avg, total := intakeStats([]float64{250, 500, 0})
	if total != 750 {
		t.Errorf("total = %v, want 750", total)
	}
	if avg != 250 {
		t.Errorf("averageDaily = %d, want 250", avg)
	}

	avg, total = intakeStats(nil)
	if avg != 0 || total != 0 {
		t.Errorf("empty series: avg=%d total=%v, want 0/0", avg, total)
	}
}

/* ─── Workout summary ────────────────────────────────────────────────── */

// TestSummarizeWorkouts verifies totals, the byType breakdown and the
// consistency percentage over the requested window.
func TestSummarizeWorkouts(t *testing.T) {
	logs := []models.DailyLog{
		day(0, withWorkouts(2, 30, models.WorkoutCardio)),
		day(1, nil),
		day(2, withWorkouts(1, 45, models.WorkoutStrength)),
	}

	sum := summarizeWorkouts(logs, 10)

	if sum.Summary.TotalWorkouts != 3 {
		t.Errorf("totalWorkouts = %d, want 3", sum.Summary.TotalWorkouts)
	}
	if sum.Summary.TotalMinutes != 105 {
		t.Errorf("totalMinutes = %d, want 105", sum.Summary.TotalMinutes)
	}
	if sum.Summary.WorkoutDays != 2 {
		t.Errorf("workoutDays = %d, want 2", sum.Summary.WorkoutDays)
	}
	// 105 / 2 = 52.5 -> 53
	if sum.Summary.AveragePerDay != 53 {
		t.Errorf("averagePerDay = %d, want 53", sum.Summary.AveragePerDay)
	}
	// 2 of 10 days -> 20%
	if sum.Summary.Consistency != 20 {
		t.Errorf("consistency = %d, want 20", sum.Summary.Consistency)
	}

	cardio := sum.Summary.WorkoutsByType[models.WorkoutCardio]
	if cardio.Count != 2 || cardio.Minutes != 60 {
		t.Errorf("cardio breakdown = %+v, want {2 60}", cardio)
	}
	strength := sum.Summary.WorkoutsByType[models.WorkoutStrength]
	if strength.Count != 1 || strength.Minutes != 45 {
		t.Errorf("strength breakdown = %+v, want {1 45}", strength)
	}

	if len(sum.Data.DailyMinutes) != 3 || sum.Data.DailyMinutes[1] != 0 {
		t.Errorf("dailyMinutes = %v, want a zero entry for the workout-free day", sum.Data.DailyMinutes)
	}
}

// TestSummarizeWorkouts_Empty verifies the no-workout-days case reports
// zero averages instead of dividing by zero.
func TestSummarizeWorkouts_Empty(t *testing.T) {
	sum := summarizeWorkouts([]models.DailyLog{day(0, nil)}, 30)
	if sum.Summary.AveragePerDay != 0 {
		t.Errorf("averagePerDay = %d, want 0", sum.Summary.AveragePerDay)
	}
	if sum.Summary.Consistency != 0 {
		t.Errorf("consistency = %d, want 0", sum.Summary.Consistency)
	}
}

/* ─── Streaks ────────────────────────────────────────────────────────── */

// TestComputeStreaks covers the backward scan for the current streak
// and the forward max-run for the longest streak. With five logged days
// where only days 3-5 have workouts, both streaks are 3.
func TestComputeStreaks(t *testing.T) {
	logs := []models.DailyLog{
		day(0, nil),
		day(1, nil),
		day(2, withWorkouts(1, 30, models.WorkoutCardio)),
		day(3, withWorkouts(1, 30, models.WorkoutCardio)),
		day(4, withWorkouts(1, 30, models.WorkoutCardio)),
	}

	current, longest := computeStreaks(logs)
	if current != 3 {
		t.Errorf("currentStreak = %d, want 3", current)
	}
	if longest != 3 {
		t.Errorf("longestStreak = %d, want 3", longest)
	}
}

// TestComputeStreaks_BrokenTail verifies a workout-free most recent day
// zeroes the current streak while the longest streak survives earlier
// in the list.
func TestComputeStreaks_BrokenTail(t *testing.T) {
	logs := []models.DailyLog{
		day(0, withWorkouts(1, 20, models.WorkoutYoga)),
		day(1, withWorkouts(1, 20, models.WorkoutYoga)),
		day(2, nil),
		day(3, withWorkouts(1, 20, models.WorkoutYoga)),
		day(4, nil),
	}

	current, longest := computeStreaks(logs)
	if current != 0 {
		t.Errorf("currentStreak = %d, want 0", current)
	}
	if longest != 2 {
		t.Errorf("longestStreak = %d, want 2", longest)
	}
}

// TestComputeStreaks_Empty verifies the empty list yields zero streaks.
func TestComputeStreaks_Empty(t *testing.T) {
	current, longest := computeStreaks(nil)
	if current != 0 || longest != 0 {
		t.Errorf("streaks = %d/%d, want 0/0", current, longest)
	}
}

/* ─── Dashboard ──────────────────────────────────────────────────────── */

// TestBuildDashboard verifies the combined aggregate: averages, workout
// counters, streaks and parallel chart series.
func TestBuildDashboard(t *testing.T) {
	logs := []models.DailyLog{
		day(0, func(l *models.DailyLog) {
			l.Calories = 2000
			l.WaterIntake = 2500
		}),
		day(1, func(l *models.DailyLog) {
			l.Calories = 1800
			l.WaterIntake = 2000
			withWorkouts(2, 25, models.WorkoutHIIT)(l)
		}),
	}

	dash := buildDashboard(logs, 30)

	if dash.Analytics.TotalDays != 30 || dash.Analytics.LoggedDays != 2 {
		t.Errorf("days = %d/%d, want 30/2", dash.Analytics.TotalDays, dash.Analytics.LoggedDays)
	}
	if dash.Analytics.AverageCalories != 1900 {
		t.Errorf("averageCalories = %d, want 1900", dash.Analytics.AverageCalories)
	}
	if dash.Analytics.AverageWater != 2250 {
		t.Errorf("averageWater = %d, want 2250", dash.Analytics.AverageWater)
	}
	if dash.Analytics.TotalWorkouts != 2 || dash.Analytics.WorkoutDays != 1 {
		t.Errorf("workouts = %d over %d days, want 2 over 1", dash.Analytics.TotalWorkouts, dash.Analytics.WorkoutDays)
	}
	if dash.Analytics.CurrentStreak != 1 || dash.Analytics.LongestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", dash.Analytics.CurrentStreak, dash.Analytics.LongestStreak)
	}

	if len(dash.ChartData.Dates) != 2 || len(dash.ChartData.Workouts) != 2 {
		t.Fatalf("chart series lengths = %d/%d, want 2/2", len(dash.ChartData.Dates), len(dash.ChartData.Workouts))
	}
	if dash.ChartData.Workouts[0] != 0 || dash.ChartData.Workouts[1] != 2 {
		t.Errorf("workout series = %v, want [0 2]", dash.ChartData.Workouts)
	}
}

// TestBuildDashboard_Empty verifies the zero-log window reports zeros
// throughout.
func TestBuildDashboard_Empty(t *testing.T) {
	dash := buildDashboard(nil, 7)
	if dash.Analytics.LoggedDays != 0 || dash.Analytics.AverageCalories != 0 ||
		dash.Analytics.CurrentStreak != 0 || dash.Analytics.LongestStreak != 0 {
		t.Errorf("empty dashboard not zeroed: %+v", dash.Analytics)
	}
}

package services

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/utils"
)

// DailyWaterGoalML is reported alongside the water trend for client-side
// comparison (2.5 liters).
const DailyWaterGoalML = 2500

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Weight trend ----------

type WeightTrend struct {
	Data struct {
		Dates   []string  `json:"dates"`
		Weights []float64 `json:"weights"`
	} `json:"data"`
	Stats struct {
		DataPoints    int      `json:"dataPoints"`
		StartWeight   *float64 `json:"startWeight"`
		CurrentWeight *float64 `json:"currentWeight"`
		WeightChange  float64  `json:"weightChange"`
		AverageWeight float64  `json:"averageWeight"`
		Trend         string   `json:"trend"`
	} `json:"stats"`
}

// WeightTrend reports the (date, weight) series over the last days days.
// Logs without a recorded weight are excluded from the series, never
// treated as zero.
func (s *AnalyticsService) WeightTrend(ctx context.Context, userID uint, days int) (*WeightTrend, error) {
	logs, err := s.logsInWindow(ctx, userID, days, false)
	if err != nil {
		return nil, err
	}
	return buildWeightTrend(logs), nil
}

func buildWeightTrend(logs []models.DailyLog) *WeightTrend {
	out := &WeightTrend{}
	out.Data.Dates = []string{}
	out.Data.Weights = []float64{}

	for _, log := range logs {
		if log.Weight == nil {
			continue
		}
		out.Data.Dates = append(out.Data.Dates, dayKey(log.Date))
		out.Data.Weights = append(out.Data.Weights, *log.Weight)
	}

	weights := out.Data.Weights
	out.Stats.DataPoints = len(weights)
	out.Stats.Trend = "stable"

	if len(weights) == 0 {
		return out
	}

	out.Stats.StartWeight = &weights[0]
	out.Stats.CurrentWeight = &weights[len(weights)-1]

	var sum float64
	for _, w := range weights {
		sum += w
	}
	out.Stats.AverageWeight = round1(sum / float64(len(weights)))

	if len(weights) >= 2 {
		change := weights[len(weights)-1] - weights[0]
		out.Stats.WeightChange = round1(change)
		if change > 0 {
			out.Stats.Trend = "increasing"
		} else if change < 0 {
			out.Stats.Trend = "decreasing"
		}
	}

	return out
}

// ---------- Water / calorie trends ----------

type WaterTrend struct {
	Data struct {
		Dates        []string  `json:"dates"`
		WaterIntakes []float64 `json:"waterIntakes"`
	} `json:"data"`
	Stats struct {
		DataPoints   int     `json:"dataPoints"`
		AverageDaily int     `json:"averageDaily"`
		TotalIntake  float64 `json:"totalIntake"`
		Goal         int     `json:"goal"`
	} `json:"stats"`
}

func (s *AnalyticsService) WaterTrend(ctx context.Context, userID uint, days int) (*WaterTrend, error) {
	logs, err := s.logsInWindow(ctx, userID, days, false)
	if err != nil {
		return nil, err
	}

	out := &WaterTrend{}
	out.Data.Dates, out.Data.WaterIntakes = intakeSeries(logs, func(l models.DailyLog) float64 { return l.WaterIntake })
	out.Stats.DataPoints = len(logs)
	out.Stats.AverageDaily, out.Stats.TotalIntake = intakeStats(out.Data.WaterIntakes)
	out.Stats.Goal = DailyWaterGoalML
	return out, nil
}

type CalorieTrend struct {
	Data struct {
		Dates    []string  `json:"dates"`
		Calories []float64 `json:"calories"`
	} `json:"data"`
	Stats struct {
		DataPoints   int     `json:"dataPoints"`
		AverageDaily int     `json:"averageDaily"`
		TotalIntake  float64 `json:"totalIntake"`
	} `json:"stats"`
}

func (s *AnalyticsService) CalorieTrend(ctx context.Context, userID uint, days int) (*CalorieTrend, error) {
	logs, err := s.logsInWindow(ctx, userID, days, false)
	if err != nil {
		return nil, err
	}

	out := &CalorieTrend{}
	out.Data.Dates, out.Data.Calories = intakeSeries(logs, func(l models.DailyLog) float64 { return l.Calories })
	out.Stats.DataPoints = len(logs)
	out.Stats.AverageDaily, out.Stats.TotalIntake = intakeStats(out.Data.Calories)
	return out, nil
}

func intakeSeries(logs []models.DailyLog, value func(models.DailyLog) float64) ([]string, []float64) {
	dates := make([]string, 0, len(logs))
	values := make([]float64, 0, len(logs))
	for _, log := range logs {
		dates = append(dates, dayKey(log.Date))
		values = append(values, value(log))
	}
	return dates, values
}

func intakeStats(values []float64) (averageDaily int, total float64) {
	for _, v := range values {
		total += v
	}
	if len(values) > 0 {
		averageDaily = int(math.Round(total / float64(len(values))))
	}
	return averageDaily, total
}

// ---------- Workout summary ----------

type TypeBreakdown struct {
	Count   int `json:"count"`
	Minutes int `json:"minutes"`
}

type WorkoutSummary struct {
	Data struct {
		Dates        []string `json:"dates"`
		DailyMinutes []int    `json:"dailyMinutes"`
	} `json:"data"`
	Summary struct {
		TotalWorkouts  int                                  `json:"totalWorkouts"`
		TotalMinutes   int                                  `json:"totalMinutes"`
		WorkoutDays    int                                  `json:"workoutDays"`
		AveragePerDay  int                                  `json:"averagePerDay"`
		WorkoutsByType map[models.WorkoutType]TypeBreakdown `json:"workoutsByType"`
		Consistency    int                                  `json:"consistency"`
	} `json:"summary"`
}

func (s *AnalyticsService) WorkoutSummary(ctx context.Context, userID uint, days int) (*WorkoutSummary, error) {
	logs, err := s.logsInWindow(ctx, userID, days, true)
	if err != nil {
		return nil, err
	}
	return summarizeWorkouts(logs, days), nil
}

func summarizeWorkouts(logs []models.DailyLog, days int) *WorkoutSummary {
	out := &WorkoutSummary{}
	out.Data.Dates = []string{}
	out.Data.DailyMinutes = []int{}
	out.Summary.WorkoutsByType = map[models.WorkoutType]TypeBreakdown{}

	for _, log := range logs {
		dayMinutes := 0
		for _, w := range log.Workouts {
			dayMinutes += w.Duration
		}

		out.Data.Dates = append(out.Data.Dates, dayKey(log.Date))
		out.Data.DailyMinutes = append(out.Data.DailyMinutes, dayMinutes)

		if len(log.Workouts) == 0 {
			continue
		}
		out.Summary.WorkoutDays++
		out.Summary.TotalWorkouts += len(log.Workouts)
		out.Summary.TotalMinutes += dayMinutes

		for _, w := range log.Workouts {
			bt := out.Summary.WorkoutsByType[w.Type]
			bt.Count++
			bt.Minutes += w.Duration
			out.Summary.WorkoutsByType[w.Type] = bt
		}
	}

	if out.Summary.WorkoutDays > 0 {
		out.Summary.AveragePerDay = int(math.Round(float64(out.Summary.TotalMinutes) / float64(out.Summary.WorkoutDays)))
	}
	if days > 0 {
		out.Summary.Consistency = int(math.Round(float64(out.Summary.WorkoutDays) / float64(days) * 100))
	}

	return out
}

// ---------- Dashboard ----------

type Dashboard struct {
	Analytics struct {
		TotalDays       int `json:"totalDays"`
		LoggedDays      int `json:"loggedDays"`
		AverageCalories int `json:"averageCalories"`
		AverageWater    int `json:"averageWater"`
		TotalWorkouts   int `json:"totalWorkouts"`
		WorkoutDays     int `json:"workoutDays"`
		CurrentStreak   int `json:"currentStreak"`
		LongestStreak   int `json:"longestStreak"`
	} `json:"analytics"`
	ChartData struct {
		Dates    []string  `json:"dates"`
		Calories []float64 `json:"calories"`
		Water    []float64 `json:"water"`
		Workouts []int     `json:"workouts"`
	} `json:"chartData"`
}

func (s *AnalyticsService) Dashboard(ctx context.Context, userID uint, days int) (*Dashboard, error) {
	logs, err := s.logsInWindow(ctx, userID, days, true)
	if err != nil {
		return nil, err
	}
	return buildDashboard(logs, days), nil
}

func buildDashboard(logs []models.DailyLog, days int) *Dashboard {
	out := &Dashboard{}
	out.Analytics.TotalDays = days
	out.Analytics.LoggedDays = len(logs)
	out.ChartData.Dates = []string{}
	out.ChartData.Calories = []float64{}
	out.ChartData.Water = []float64{}
	out.ChartData.Workouts = []int{}

	var calorieSum, waterSum float64
	for _, log := range logs {
		calorieSum += log.Calories
		waterSum += log.WaterIntake
		if len(log.Workouts) > 0 {
			out.Analytics.WorkoutDays++
			out.Analytics.TotalWorkouts += len(log.Workouts)
		}

		out.ChartData.Dates = append(out.ChartData.Dates, dayKey(log.Date))
		out.ChartData.Calories = append(out.ChartData.Calories, log.Calories)
		out.ChartData.Water = append(out.ChartData.Water, log.WaterIntake)
		out.ChartData.Workouts = append(out.ChartData.Workouts, len(log.Workouts))
	}

	if len(logs) > 0 {
		out.Analytics.AverageCalories = int(math.Round(calorieSum / float64(len(logs))))
		out.Analytics.AverageWater = int(math.Round(waterSum / float64(len(logs))))
	}

	out.Analytics.CurrentStreak, out.Analytics.LongestStreak = computeStreaks(logs)
	return out
}

// computeStreaks scans the ascending-by-date log list. Current streak
// counts workout-having days backward from the most recent log; longest
// streak is the maximum forward run. Runs are over the fetched list: a
// logged day with no workouts breaks a run, a calendar day with no log
// row at all does not.
func computeStreaks(logs []models.DailyLog) (current, longest int) {
	for i := len(logs) - 1; i >= 0; i-- {
		if len(logs[i].Workouts) == 0 {
			break
		}
		current++
	}

	run := 0
	for _, log := range logs {
		if len(log.Workouts) == 0 {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}

	return current, longest
}

// ---------- internals ----------

// logsInWindow fetches the user's logs in [today-days+1, today], sorted
// ascending for trend computation.
func (s *AnalyticsService) logsInWindow(ctx context.Context, userID uint, days int, withWorkouts bool) ([]models.DailyLog, error) {
	now := time.Now()
	start := utils.DayStart(now.AddDate(0, 0, -(days - 1)))
	end := utils.DayEnd(now)

	q := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC")
	if withWorkouts {
		q = q.Preload("Workouts")
	}

	var logs []models.DailyLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

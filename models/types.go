package models

// Enumerated domain values. Each type carries a Valid method so handlers
// can reject unknown values before they reach the database.

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "Low"
	ActivityModerate ActivityLevel = "Moderate"
	ActivityHigh     ActivityLevel = "High"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivityLow, ActivityModerate, ActivityHigh:
		return true
	}
	return false
}

type Goal string

const (
	GoalWeightLoss Goal = "Weight Loss"
	GoalMaintain   Goal = "Maintain"
	GoalMuscleGain Goal = "Muscle Gain"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalMaintain, GoalMuscleGain:
		return true
	}
	return false
}

// BMICategory is derived from BMI, never supplied by the client.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

type WorkoutType string

const (
	WorkoutCardio      WorkoutType = "Cardio"
	WorkoutStrength    WorkoutType = "Strength"
	WorkoutHIIT        WorkoutType = "HIIT"
	WorkoutYoga        WorkoutType = "Yoga"
	WorkoutFlexibility WorkoutType = "Flexibility"
)

func (w WorkoutType) Valid() bool {
	switch w {
	case WorkoutCardio, WorkoutStrength, WorkoutHIIT, WorkoutYoga, WorkoutFlexibility:
		return true
	}
	return false
}

type ChallengeType string

const (
	ChallengeDaily  ChallengeType = "Daily"
	ChallengeWeekly ChallengeType = "Weekly"
)

func (c ChallengeType) Valid() bool {
	return c == ChallengeDaily || c == ChallengeWeekly
}

type DietType string

const (
	DietVeg    DietType = "veg"
	DietNonVeg DietType = "nonveg"
)

func (d DietType) Valid() bool {
	return d == DietVeg || d == DietNonVeg
}

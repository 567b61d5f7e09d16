package models

import "time"

// Gender — пол пользователя.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel — уровень физической активности.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// FoodEntry — запись в дневнике питания.
type FoodEntry struct {
	Name            string
	CaloriesPer100g float64
	LoggedAt        time.Time
}

// WorkoutEntry — запись в дневнике тренировок.
type WorkoutEntry struct {
	Type           string
	Minutes        int
	CaloriesBurned float64
	LoggedAt       time.Time
}

// UserProfile представляет профиль пользователя с дневными нормами
// и накопленным прогрессом. Профиль пригоден для логирования только
// после завершения настройки (Configured == true).
type UserProfile struct {
	Weight        float64 // кг
	Height        float64 // см
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
	City          string

	WaterGoalMl float64 // растёт при логировании тренировок
	CalorieGoal float64 // фиксируется при завершении настройки

	LoggedWaterMl  float64
	LoggedCalories float64
	BurnedCalories float64

	FoodLog    []FoodEntry
	WorkoutLog []WorkoutEntry

	Configured bool
}

// DialogKind — вид многошагового диалога.
type DialogKind string

const (
	DialogNone         DialogKind = ""
	DialogProfileSetup DialogKind = "profile_setup"
	DialogLogWater     DialogKind = "log_water"
	DialogLogFood      DialogKind = "log_food"
	DialogLogWorkout   DialogKind = "log_workout"
)

// Константы шагов для конечного автомата (FSM)
const (
	StepNone = ""

	StepWeight   = "weight"
	StepHeight   = "height"
	StepAge      = "age"
	StepGender   = "gender"
	StepActivity = "activity"
	StepCity     = "city"

	StepWaterAmount = "water_amount"

	StepFoodName   = "food_name"
	StepFoodAmount = "food_amount"

	StepWorkoutType    = "workout_type"
	StepWorkoutMinutes = "workout_minutes"
)

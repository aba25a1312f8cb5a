package models

// Значения enum-полей профиля и активности

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalWeightLoss  = "weight_loss"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"
)

const (
	ActivityLevelSedentary  = "sedentary"
	ActivityLevelLight      = "light"
	ActivityLevelModerate   = "moderate"
	ActivityLevelActive     = "active"
	ActivityLevelVeryActive = "very_active"
)

const (
	ActivityTypeRun  = "run"
	ActivityTypeWalk = "walk"
	ActivityTypeBike = "bike"
	ActivityTypeSwim = "swim"
)

package validator

import (
	"log"

	"fittrack_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без кастомных правил приложение стартовать не должно
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-gender", validateGender)
	mustRegister("is-goal", validateGoal)
	mustRegister("is-activity-level", validateActivityLevel)
	mustRegister("is-activity-type", validateActivityType)
}

// --- Функции валидации ---

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения обрабатывает 'required'
	}
	switch value {
	case models.GenderMale, models.GenderFemale:
		return true
	default:
		return false
	}
}

func validateGoal(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.GoalWeightLoss, models.GoalMuscleGain, models.GoalMaintenance:
		return true
	default:
		return false
	}
}

func validateActivityLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.ActivityLevelSedentary, models.ActivityLevelLight, models.ActivityLevelModerate,
		models.ActivityLevelActive, models.ActivityLevelVeryActive:
		return true
	default:
		return false
	}
}

func validateActivityType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.ActivityTypeRun, models.ActivityTypeWalk, models.ActivityTypeBike, models.ActivityTypeSwim:
		return true
	default:
		return false
	}
}

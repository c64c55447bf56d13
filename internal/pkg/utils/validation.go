package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("achievement_status", validateAchievementStatus)
	validate.RegisterValidation("clock_12h", validateClock12h)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAchievementStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "IN_PROGRESS" || value == "ACHIEVED" || value == "NOT_ACHIEVED"
}

func validateClock12h(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

package validator

import (
	"reflect"
	"strings"

	apperrors "github.com/edufi/quiz-grading-service/internal/errors"
	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps struct-tag validation plus the custom quiz-domain rules.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// Validate validates struct tags on s. Failures come back as the shared
// ValidationErrors type with JSON field names.
func (v *Validator) Validate(s interface{}) error {
	err := v.structValidator.Struct(s)
	if err == nil {
		return nil
	}
	if converted := apperrors.ToValidationErrors(err); len(converted) > 0 {
		return converted
	}
	return err
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("quiz_item_type", validateQuizItemType)
	validate.RegisterValidation("grading_policy", validateGradingPolicy)
	validate.RegisterValidation("display_direction", validateDisplayDirection)

	// Report JSON field names in error messages instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuizItemType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, validType := range models.AllQuizItemTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateGradingPolicy(fl validator.FieldLevel) bool {
	validPolicies := []models.MultipleChoiceGradingPolicy{
		models.PolicyDefault,
		models.PolicyPointsOffIncorrect,
		models.PolicyPointsOffUnselected,
		models.PolicySomeCorrectNoneIncorrect,
	}

	value := fl.Field().String()
	for _, validPolicy := range validPolicies {
		if string(validPolicy) == value {
			return true
		}
	}
	return false
}

func validateDisplayDirection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.DirectionHorizontal) || value == string(models.DirectionVertical)
}

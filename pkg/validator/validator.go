package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

const dateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В сообщениях об ошибках используем имена из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Дата в формате YYYY-MM-DD
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})

	// Интервал времени суток "HH:MM-HH:MM"
	_ = validate.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		_, err := types.ParseTimeRange(fl.Field().String())
		return err == nil
	})
}

// Validate проверяет структуру и возвращает ошибки по полям
// nil означает, что структура валидна
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			errors[field] = "field is required"
		case "oneof":
			errors[field] = "must be one of: " + fe.Param()
		case "min", "gte":
			errors[field] = "must be at least " + fe.Param()
		case "max", "lte":
			errors[field] = "must be at most " + fe.Param()
		case "date":
			errors[field] = "invalid date, expected YYYY-MM-DD"
		case "timeslot":
			errors[field] = "invalid time slot, expected HH:MM-HH:MM"
		default:
			errors[field] = "invalid value"
		}
	}

	return errors
}

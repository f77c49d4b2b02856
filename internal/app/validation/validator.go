package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"Contract-Service/internal/app/contract"

	"github.com/go-playground/validator/v10"
)

// Validator проверяет ограничения из тегов binding и возвращает
// contract.Violations с именами полей из json тегов.
// Подходит как binding.Validator для gin.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()
	validate.SetTagName("binding")
	validate.RegisterTagNameFunc(jsonName)
	return &Validator{validate: validate}
}

// ValidateStruct принимает структуру, указатель на нее или срез структур.
// Остальные значения ограничений не имеют и проходят без ошибок.
func (v *Validator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Pointer:
		if value.IsNil() {
			return nil
		}
		return v.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		return v.validateStruct(obj)
	case reflect.Slice, reflect.Array:
		var all contract.Violations
		for i := 0; i < value.Len(); i++ {
			err := v.ValidateStruct(value.Index(i).Interface())
			if err == nil {
				continue
			}
			var violations contract.Violations
			if !errors.As(err, &violations) {
				return err
			}
			all = append(all, violations...)
		}
		if len(all) == 0 {
			return nil
		}
		return all
	default:
		return nil
	}
}

// Engine отдает исходный *validator.Validate для регистрации своих правил
func (v *Validator) Engine() any {
	return v.validate
}

func (v *Validator) validateStruct(obj any) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	violations := make(contract.Violations, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, contract.Violation{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return violations
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

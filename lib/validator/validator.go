package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError ошибки по полям запроса, ключ - имя поля из json-тега
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}
	return "ошибка валидации: " + strings.Join(msgs, "; ")
}

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		registerCustomRules(v)
		instance = v
	})
	return instance
}

// Struct проверяет структуру по тегам validate
func Struct(i interface{}) error {
	err := get().Struct(i)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	result := map[string]string{}
	for _, fe := range validationErrors {
		result[fieldPath(fe)] = getErrorMessage(fe)
	}
	return &ValidationError{Errors: result}
}

// fieldPath путь без имени корневой структуры: education[0].institution
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if pos := strings.Index(ns, "."); pos >= 0 {
		return ns[pos+1:]
	}
	return fe.Field()
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "email":
		return "некорректный email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("минимальная длина %s символов", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("минимум %s элементов", fe.Param())
		}
		return fmt.Sprintf("значение не меньше %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("максимальная длина %s символов", fe.Param())
		}
		return fmt.Sprintf("значение не больше %s", fe.Param())
	case "gte":
		return fmt.Sprintf("значение не меньше %s", fe.Param())
	case "lte":
		return fmt.Sprintf("значение не больше %s", fe.Param())
	case "numeric":
		return "допустимы только цифры"
	case "oneof":
		return fmt.Sprintf("допустимые значения: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "employment_type":
		return "неизвестный тип занятости"
	case "schedule_type":
		return "неизвестный график работы"
	case "application_status":
		return "неизвестный статус отклика"
	default:
		return fmt.Sprintf("некорректное значение (%s)", fe.Tag())
	}
}

package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return entity.Category(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("habit_kind", func(fl validator.FieldLevel) bool {
			kind := entity.HabitKind(fl.Field().String())
			return kind == entity.KindBoolean || kind == entity.KindCountable
		})
		validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return entity.Mood(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("day_key", func(fl validator.FieldLevel) bool {
			_, err := pulse.ParseDayKey(fl.Field().String(), nil)
			return err == nil
		})
	})
}

// validationError runs the validator over req and folds field errors into
// ErrValidation.
func validationError(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range fieldErrs {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

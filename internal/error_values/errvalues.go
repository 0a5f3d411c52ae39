package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation failed")

	ErrHabitNotFound  = errors.New("habit doesn't exist")
	ErrNoStoredData   = errors.New("nothing stored for user yet")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDateNotAllowed = errors.New("logging for future dates is not allowed")
	ErrInvalidMood    = errors.New("unknown mood")
)

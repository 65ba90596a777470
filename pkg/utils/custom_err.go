package utils

import "errors"

var (
	ErrDatabaseError        = errors.New("database error")
	ErrBadRequest           = errors.New("bad request")
	ErrPageNotFound         = errors.New("page not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrDuplicateQuestion    = errors.New("question already exists")
	ErrQuizCategoryNotFound = errors.New("quiz category not found")
)

// IsDomainError reports whether err is a business-rule failure that should
// reach the client as-is rather than being treated as a store failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrPageNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrDuplicateQuestion) ||
		errors.Is(err, ErrQuizCategoryNotFound)
}

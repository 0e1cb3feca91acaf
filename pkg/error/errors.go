package error

import (
	"errors"
	"net/http"
)

// GenericError is implemented by every typed error the REST layer knows how to render.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}

type NotFoundError string

func (err NotFoundError) Error() string {
	return string(err)
}

func (err NotFoundError) ErrCode() string {
	return "NOT_FOUND_ERROR"
}

func (err NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

type ValidationError string

func (err ValidationError) Error() string {
	return string(err)
}

func (err ValidationError) ErrCode() string {
	return "VALIDATION_ERROR"
}

func (err ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// LimitReachedError is returned when a domain quota (messages, tags, steps)
// rejects a request before anything is written.
type LimitReachedError string

func (err LimitReachedError) Error() string {
	return string(err)
}

func (err LimitReachedError) ErrCode() string {
	return "LIMIT_REACHED"
}

func (err LimitReachedError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// IsLimitReached reports whether err (or anything it wraps) is a LimitReachedError.
func IsLimitReached(err error) bool {
	var target LimitReachedError
	return errors.As(err, &target)
}

// As extracts the first GenericError in err's chain.
func As(err error) (GenericError, bool) {
	var ge GenericError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

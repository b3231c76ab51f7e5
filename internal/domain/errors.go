package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInternalError = errors.New("internal error")
)

// AppError carries an HTTP status code alongside a user-facing message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Code: 404, Message: msg, Err: ErrNotFound}
}

func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrInvalidInput}
}

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: 401, Message: msg, Err: ErrUnauthorized}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Code: 409, Message: msg, Err: ErrAlreadyExists}
}

func NewInternalError(msg string, err error) *AppError {
	return &AppError{Code: 500, Message: msg, Err: err}
}

package models

type ErrorKind int

const (
	ErrorKindInvalid ErrorKind = iota
	ErrorKindNotFound
	ErrorKindForbidden
	ErrorKindConflict
	ErrorKindUnprocessable
	ErrorKindUnauthorized
)

// DomainError ошибка бизнес-логики, текст которой можно показать пользователю
type DomainError struct {
	Kind ErrorKind
	Msg  string
}

func (e *DomainError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) *DomainError {
	return &DomainError{Kind: ErrorKindNotFound, Msg: msg}
}

func NewForbiddenError(msg string) *DomainError {
	return &DomainError{Kind: ErrorKindForbidden, Msg: msg}
}

func NewConflictError(msg string) *DomainError {
	return &DomainError{Kind: ErrorKindConflict, Msg: msg}
}

func NewUnprocessableError(msg string) *DomainError {
	return &DomainError{Kind: ErrorKindUnprocessable, Msg: msg}
}

func NewUnauthorizedError(msg string) *DomainError {
	return &DomainError{Kind: ErrorKindUnauthorized, Msg: msg}
}

func NewInvalidError(msg string) *DomainError {
	return &DomainError{Kind: ErrorKindInvalid, Msg: msg}
}

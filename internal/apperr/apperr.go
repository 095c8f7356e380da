// Package apperr описывает таксономию ошибок, общую для сервера и клиента.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/agendasync/pkg/api"
)

// Code машиночитаемый код ошибки
type Code string

const (
	CodeUnauthenticated  Code = api.CodeUnauthenticated
	CodePermissionDenied Code = api.CodePermissionDenied
	CodeNotFound         Code = api.CodeNotFound
	CodeInvalidArgument  Code = api.CodeInvalidArgument
	CodeAlreadyExists    Code = api.CodeAlreadyExists
	// CodeConflict - несовпадение версии при CAS записи
	CodeConflict Code = api.CodeFailedPrecondition
	CodeInternal Code = api.CodeInternal
)

// Error ошибка с кодом из таксономии
type Error struct {
	Err     error
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по коду, чтобы errors.Is(err, apperr.ErrConflict) работал
// для любого сообщения
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Образцы для errors.Is
var (
	ErrUnauthenticated  = &Error{Code: CodeUnauthenticated}
	ErrPermissionDenied = &Error{Code: CodePermissionDenied}
	ErrNotFound         = &Error{Code: CodeNotFound}
	ErrInvalidArgument  = &Error{Code: CodeInvalidArgument}
	ErrAlreadyExists    = &Error{Code: CodeAlreadyExists}
	ErrConflict         = &Error{Code: CodeConflict}
	ErrInternal         = &Error{Code: CodeInternal}
)

func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap создает ошибку с кодом поверх err
func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func Unauthenticated(msg string) *Error  { return New(CodeUnauthenticated, msg) }
func PermissionDenied(msg string) *Error { return New(CodePermissionDenied, msg) }
func NotFound(msg string) *Error         { return New(CodeNotFound, msg) }
func InvalidArgument(msg string) *Error  { return New(CodeInvalidArgument, msg) }
func AlreadyExists(msg string) *Error    { return New(CodeAlreadyExists, msg) }
func Conflict(msg string) *Error         { return New(CodeConflict, msg) }

// CodeOf возвращает код ошибки; для ошибок вне таксономии - CodeInternal
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf возвращает сообщение для пользователя
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus отображает код в HTTP статус ответа
func HTTPStatus(code Code) int {
	switch code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeConflict:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// FromHTTP восстанавливает ошибку по ответу сервера.
// Если код не передан, он выводится из статуса
func FromHTTP(status int, code, msg string) *Error {
	if code != "" {
		return New(Code(code), msg)
	}
	switch status {
	case http.StatusUnauthorized:
		return Unauthenticated(msg)
	case http.StatusForbidden:
		return PermissionDenied(msg)
	case http.StatusNotFound:
		return NotFound(msg)
	case http.StatusBadRequest:
		return InvalidArgument(msg)
	case http.StatusConflict:
		return AlreadyExists(msg)
	case http.StatusPreconditionFailed:
		return Conflict(msg)
	default:
		return New(CodeInternal, msg)
	}
}

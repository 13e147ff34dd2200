package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeOrgExists         ErrorCode = "ORG_EXISTS"
	ErrorCodeProjectKeyTaken   ErrorCode = "PROJECT_KEY_TAKEN"
	ErrorCodeInviteExists      ErrorCode = "INVITE_EXISTS"
	ErrorCodeInviteUnusable    ErrorCode = "INVITE_UNUSABLE"
	ErrorCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrorCodeModuleInUse       ErrorCode = "MODULE_IN_USE"
	ErrorCodeAlreadyLinked     ErrorCode = "ALREADY_LINKED"
	ErrorCodeNoIntegration     ErrorCode = "NO_INTEGRATION"
	ErrorCodeInvalidGeometry   ErrorCode = "INVALID_GEOMETRY"
	ErrorCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidInput      ErrorCode = "INVALID_INPUT"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает доменные ошибки по коду, чтобы errors.Is работал
// для ошибок созданных через NewError с тем же кодом
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Предопределённые доменные ошибки
var (
	// ErrResourceNotFound - ресурс не найден
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	// ErrOrgExists - организация с таким slug уже существует
	ErrOrgExists = NewError(
		http.StatusConflict,
		ErrorCodeOrgExists,
		"organization already exists",
		nil,
	)

	// ErrProjectKeyTaken - ключ проекта уже занят внутри организации
	ErrProjectKeyTaken = NewError(
		http.StatusConflict,
		ErrorCodeProjectKeyTaken,
		"project key is already taken in this organization",
		nil,
	)

	// ErrInviteExists - для этого email уже есть активное приглашение
	ErrInviteExists = NewError(
		http.StatusConflict,
		ErrorCodeInviteExists,
		"a pending invitation already exists for this email",
		nil,
	)

	// ErrInviteUnusable - приглашение принято, отозвано или просрочено
	ErrInviteUnusable = NewError(
		http.StatusConflict,
		ErrorCodeInviteUnusable,
		"invitation is no longer usable",
		nil,
	)

	// ErrInvalidTransition - запрещённый переход статуса бага
	ErrInvalidTransition = NewError(
		http.StatusConflict,
		ErrorCodeInvalidTransition,
		"status transition is not allowed",
		nil,
	)

	// ErrModuleInUse - модуль нельзя удалить пока на него ссылаются тест-кейсы
	ErrModuleInUse = NewError(
		http.StatusConflict,
		ErrorCodeModuleInUse,
		"module still has test cases attached",
		nil,
	)

	// ErrAlreadyLinked - баг уже связан с задачей этого провайдера
	ErrAlreadyLinked = NewError(
		http.StatusConflict,
		ErrorCodeAlreadyLinked,
		"bug is already linked to an issue in this tracker",
		nil,
	)

	// ErrNoIntegration - у организации нет активной интеграции этого провайдера
	ErrNoIntegration = NewError(
		http.StatusConflict,
		ErrorCodeNoIntegration,
		"no active integration configured for this provider",
		nil,
	)

	// ErrInvalidGeometry - геометрия аннотации нарушает инварианты
	ErrInvalidGeometry = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidGeometry,
		"annotation geometry is invalid",
		nil,
	)

	// ErrForbidden - роль участника не позволяет операцию
	ErrForbidden = NewError(
		http.StatusForbidden,
		ErrorCodeForbidden,
		"insufficient role for this operation",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)

	// ErrInvalidInput - невалидные входные данные
	ErrInvalidInput = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"invalid input data",
		nil,
	)
)

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// WrapError оборачивает обычную ошибку в доменную с контекстом
func WrapError(err error, status int, code ErrorCode, message string) *Error {
	return NewError(status, code, message, err)
}

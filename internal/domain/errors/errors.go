package errors

import (
	"fmt"
	"net/http"

	"biolink/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該個人頁面",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"此使用者名稱已被使用",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"更新個人頁面失敗",
		"",
	)

	// Template-related errors
	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"找不到該模板",
		"",
	)

	ErrTemplateUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"TEMPLATE_UPDATE_FAILED",
		"更新模板設定失敗",
		"",
	)

	// Link-related errors
	ErrLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_NOT_FOUND",
		"找不到該連結",
		"",
	)

	ErrInvalidLink = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LINK",
		"連結資料不正確",
		"",
	)

	ErrLinkCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"LINK_CREATION_FAILED",
		"建立連結失敗",
		"",
	)

	ErrLinkUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"LINK_UPDATE_FAILED",
		"更新連結失敗",
		"",
	)

	// Reorder-related errors
	ErrInvalidReorderIndex = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REORDER_INDEX",
		"排序位置超出範圍",
		"",
	)

	ErrReorderFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"REORDER_FAILED",
		"連結排序儲存失敗，已還原為最新順序",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"未授權的存取",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"無效或已過期的存取權杖",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Analytics-related errors
	ErrInvalidStatsWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATS_WINDOW",
		"統計天數超出允許範圍",
		"",
	)

	// QR code errors
	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_GENERATION_FAILED",
		"產生 QR Code 失敗",
		"",
	)

	// Event errors
	ErrEventPublishFailed = NewBaseError(
		http.StatusInternalServerError,
		"EVENT_PUBLISH_FAILED",
		"事件發送失敗",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"交易處理失敗",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"內部伺服器錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PartialReorderError reports a reorder whose batch of position writes did not fully apply.
// The batch is rolled back, so the store still holds the pre-reorder order.
type PartialReorderError struct {
	Attempted int
	Applied   int
	Cause     error
}

// NewPartialReorderError creates a partial reorder error
func NewPartialReorderError(attempted, applied int, cause error) *PartialReorderError {
	return &PartialReorderError{
		Attempted: attempted,
		Applied:   applied,
		Cause:     cause,
	}
}

// Error implements the error interface
func (e *PartialReorderError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("reorder applied %d of %d position updates", e.Applied, e.Attempted)
	}

	return errors.Wrapf(e.Cause, "reorder applied %d of %d position updates", e.Applied, e.Attempted).Error()
}

// Unwrap returns the underlying persistence failure
func (e *PartialReorderError) Unwrap() error {
	return e.Cause
}

// HTTPCode returns the HTTP status code
func (e *PartialReorderError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *PartialReorderError) ErrorCode() string {
	return "REORDER_PARTIAL"
}

// Message returns the user-friendly error message
func (e *PartialReorderError) Message() string {
	return "連結排序僅部分寫入，已全部還原"
}

// Details returns detailed error information
func (e *PartialReorderError) Details() string {
	return fmt.Sprintf("attempted=%d applied=%d", e.Attempted, e.Applied)
}

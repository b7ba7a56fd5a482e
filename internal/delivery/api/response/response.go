package response

import (
	"net/http"

	deliverycontext "biolink/internal/delivery/context"
	domainerrors "biolink/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Cache-Control values used by non-JSON responses.
const (
	CacheNoStore      = "no-store"
	CachePrivate      = "private, no-cache"
	CachePublicQRCode = "public, max-age=86400"

	contentTypePNG     = "image/png"
	headerCacheControl = "Cache-Control"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Created returns a 201 with the created resource
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// PNG writes an image body with the given Cache-Control policy.
func PNG(c echo.Context, body []byte, cacheControl string) error {
	c.Response().Header().Set(headerCacheControl, cacheControl)

	return c.Blob(http.StatusOK, contentTypePNG, body)
}

// Redirect sends the visitor to target. Redirects are never cached so every visit is counted.
func Redirect(c echo.Context, target string) error {
	c.Response().Header().Set(headerCacheControl, CacheNoStore)

	return c.Redirect(http.StatusFound, target)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}

// AppErrorWithDetails renders err under statusCode with details attached.
// It is used when the client needs state alongside the failure, such as the re-synced
// link order after a reverted reorder. Errors that are not AppErrors fall back to fallback.
func AppErrorWithDetails(c echo.Context, statusCode int, err error, fallback domainerrors.AppError, details any) error {
	appErr := fallback
	var target domainerrors.AppError
	if errors.As(err, &target) {
		appErr = target
	}

	return Error(c, statusCode, appErr.ErrorCode(), appErr.Message(), details)
}

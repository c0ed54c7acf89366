package middleware

import (
	"errors"
	"log"

	"job-scout/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries an HTTP status and client-facing message up from the
// handlers; Cause stays server-side for logs.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Middleware recovers panics and turns returned errors into the uniform
// envelope. 5xx details never reach the client.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, "", nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := describe(err)
		if status >= 500 {
			// Scrub server-side detail; the envelope default message
			// stands in.
			return response.Error(c, fiber.StatusInternalServerError, "", nil)
		}
		return response.Error(c, status, msg, data)
	}
}

// describe maps an error to (status, message, data). An empty message lets
// the response package substitute its per-status default.
func describe(err error) (int, string, interface{}) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, appErr.Message, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, "", nil
}

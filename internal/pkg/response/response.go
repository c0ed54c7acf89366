package response

import "github.com/gofiber/fiber/v3"

// Envelope is the uniform JSON body for every endpoint, success or error.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = statusMessage(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

func statusMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}

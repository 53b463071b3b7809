package utils

import (
	"errors"
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
)

var messageError map[int]string

func LoadMessageError() {
	messageError = make(map[int]string)
	messageError[http.StatusOK] = "Successfully"
	messageError[http.StatusForbidden] = "Something when wrong, Your request has been rejected"
	messageError[http.StatusInternalServerError] = "Internal server error"
	messageError[http.StatusBadRequest] = "Something when wrong with your request"
	messageError[http.StatusUnauthorized] = "Unauthorized, Permission denied"
	messageError[http.StatusNotFound] = "Record not found, Please check your input"
	messageError[http.StatusCreated] = "Created successfully"
	messageError[http.StatusGatewayTimeout] = "Gateway time out"
	messageError[http.StatusConflict] = "Your input has been conflict with another data"
	messageError[http.StatusTooManyRequests] = "Too many request"
}

func MessageError() map[int]string {
	if messageError == nil {
		LoadMessageError()
	}
	return messageError
}

// AppError is an error that maps onto an HTTP status.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewError(code int, message string) error {
	if message == "" {
		message = MessageError()[code]
	}
	return &AppError{Code: code, Message: message}
}

// StatusCode returns the HTTP status carried by err, 500 for foreign errors.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// ToGinext converts err into the error type rendered by ginext handlers.
func ToGinext(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ginext.NewError(appErr.Code, appErr.Message)
	}
	return ginext.NewError(http.StatusInternalServerError, MessageError()[http.StatusInternalServerError])
}

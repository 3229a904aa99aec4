package dto

import (
	"net/http"
	"time"
)

// DateTimeLayout formats the date field of ApiResponse.
const DateTimeLayout = "2006-01-02 15:04:05"

// ApiResponse wraps successful application route payloads.
type ApiResponse[T any] struct {
	Date     string `json:"date"`
	Status   int    `json:"status"`
	Response T      `json:"response"`
}

// NewApiResponse stamps the payload with the current time.
func NewApiResponse[T any](status int, response T) ApiResponse[T] {
	return ApiResponse[T]{
		Date:     time.Now().Format(DateTimeLayout),
		Status:   status,
		Response: response,
	}
}

// OK wraps response with status 200.
func OK[T any](response T) ApiResponse[T] {
	return NewApiResponse(http.StatusOK, response)
}

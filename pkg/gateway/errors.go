package gateway

import "errors"

const (
	ErrCodeTimeout      = "GATEWAY_TIMEOUT"
	ErrCodeUnauthorized = "GATEWAY_UNAUTHORIZED"
	ErrCodeNotFound     = "GATEWAY_TRANSACTION_NOT_FOUND"
	ErrCodeInvalidInput = "GATEWAY_INVALID_INPUT"
	ErrCodeServerError  = "GATEWAY_SERVER_ERROR"
)

var (
	ErrTimeout      = errors.New(ErrCodeTimeout)
	ErrUnauthorized = errors.New(ErrCodeUnauthorized)
	ErrNotFound     = errors.New(ErrCodeNotFound)
	ErrInvalidInput = errors.New(ErrCodeInvalidInput)
	ErrServerError  = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	401: ErrUnauthorized,
	404: ErrNotFound,
	422: ErrInvalidInput,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}

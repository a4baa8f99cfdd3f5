package constants

const (
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodePaymentFailed       = "PAYMENT_FAILED"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	ErrCodeNoGatewayReference  = "NO_GATEWAY_REFERENCE"
	ErrCodeSyncFailed          = "SYNC_FAILED"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

const (
	ErrMsgProductNotFound     = "product not found"
	ErrMsgInsufficientStock   = "insufficient stock for requested quantity"
	ErrMsgPaymentFailed       = "payment could not be processed"
	ErrMsgTransactionNotFound = "transaction not found"
	ErrMsgNoGatewayReference  = "transaction has no gateway reference yet"
	ErrMsgSyncFailed          = "could not refresh transaction status"
	ErrMsgValidationFailed    = "request validation failed"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
	ErrMsgInternalError       = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeProductNotFound:     ErrMsgProductNotFound,
	ErrCodeInsufficientStock:   ErrMsgInsufficientStock,
	ErrCodePaymentFailed:       ErrMsgPaymentFailed,
	ErrCodeTransactionNotFound: ErrMsgTransactionNotFound,
	ErrCodeNoGatewayReference:  ErrMsgNoGatewayReference,
	ErrCodeSyncFailed:          ErrMsgSyncFailed,
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
	ErrCodeInternalError:       ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidationFailed:
		return 400
	case ErrCodeProductNotFound, ErrCodeTransactionNotFound:
		return 404
	case ErrCodeInsufficientStock, ErrCodeNoGatewayReference:
		return 409
	case ErrCodePaymentFailed, ErrCodeSyncFailed:
		return 502
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}

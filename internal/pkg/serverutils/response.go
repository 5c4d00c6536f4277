package serverutils

// Response is the envelope every endpoint returns.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorBody carries an error message plus optional diagnostic payload
// (e.g. the partially-built intent when a query build fails).
type ErrorBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func ErrorResponse(message string, detail interface{}) ErrorBody {
	return ErrorBody{
		Success: false,
		Message: message,
		Detail:  detail,
	}
}

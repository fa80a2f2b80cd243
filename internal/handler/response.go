package handler

// Response is the envelope every portal endpoint answers with.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// NewValidationResponse carries the per-field messages of a failed form
// check, rendered inline by the client.
func NewValidationResponse(fields map[string]string) *Response {
	return &Response{
		Status:  "error",
		Message: "validation failed",
		Errors:  fields,
	}
}

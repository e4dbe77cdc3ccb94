package api

import "net/http"

// Description:
//
//	A transport-agnostic representation of an incoming HTTP request.
//	Handlers consume this instead of the raw engine context.
type APIRequest struct {

	// The HTTP method of the request.
	Method string

	// The request path.
	Path string

	// The raw request body.
	Body string

	// The path parameters of the request.
	PathParameters map[string]string

	// The query parameters of the request.
	QueryParameters map[string]string
}

// Description:
//
//	A transport-agnostic representation of an outgoing HTTP response.
type APIResponse struct {

	// The HTTP status code of the response.
	StatusCode int

	// Additional response headers.
	Headers map[string]string

	// The response body. Serialized as JSON by the router.
	Body interface{}
}

// Description:
//
//	The generic envelope for successful read responses.
type DataResponseBody struct {

	// The payload of the response.
	Data interface{} `json:"data"`
}

// Description:
//
//	The generic envelope for successful write responses.
type MessageResponseBody struct {

	// A human readable confirmation message.
	Message string `json:"message"`
}

// Description:
//
//	The generic envelope for failed responses.
type ErrorResponseBody struct {

	// The standard text of the HTTP status code.
	Error string `json:"error"`
}

// Description:
//
//	Creates an error response for the given HTTP status code.
//	The response body carries the standard status text, i.e.
//	"Bad Request" for 400 or "Not Found" for 404.
//
// Parameters:
//
//	statusCode The HTTP status code of the response.
//
// Returns:
//
//	An API response object.
func NewErrorResponse(statusCode int) *APIResponse {
	return &APIResponse{
		StatusCode: statusCode,
		Body: ErrorResponseBody{
			Error: http.StatusText(statusCode),
		},
	}
}

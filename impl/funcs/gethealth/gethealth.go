package gethealth

import (
	"net/http"

	"github.com/gostream-official/songs/pkg/api"
)

// Description:
//
//	The response body for the health endpoint.
type HealthResponseBody struct {

	// The health status of the service.
	Status string `json:"status"`
}

// Description:
//
//	The router handler for the health check.
//
// Parameters:
//
//	request The incoming request.
//	object 	The injector. Unused, the endpoint has no dependencies.
//
// Returns:
//
//	An API response object.
func Handler(request *api.APIRequest, object interface{}) *api.APIResponse {
	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body: HealthResponseBody{
			Status: "ok",
		},
	}
}

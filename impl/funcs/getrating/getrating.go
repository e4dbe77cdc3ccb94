package getrating

import (
	"fmt"
	"net/http"

	"github.com/gostream-official/songs/impl/faults"
	"github.com/gostream-official/songs/impl/inject"
	"github.com/gostream-official/songs/pkg/api"
	"github.com/gostream-official/songs/pkg/marshal"
	"github.com/gostream-official/songs/pkg/parallel"

	"github.com/revx-official/output/log"
)

// Description:
//
//	Attempts to cast the input object to the endpoint injector.
//	If this cast fails, we cannot proceed to process this request.
//
// Parameters:
//
//	object 	The injector object.
//
// Returns:
//
//	The injector if the cast is successful, an error otherwise.
func GetSafeInjector(object interface{}) (*inject.Injector, error) {
	injector, ok := object.(inject.Injector)

	if !ok {
		return nil, fmt.Errorf("getrating: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	The router handler for: Get Rating By ID
//
// Parameters:
//
//	request The incoming request.
//	object 	The injector. Contains injected dependencies.
//
// Returns:
//
//	An API response object.
func Handler(request *api.APIRequest, object interface{}) *api.APIResponse {
	context := parallel.NewContext()

	log.Infof("[%s] %s: %s", context.ID, request.Method, request.Path)
	log.Tracef("[%s] request: %s", context.ID, marshal.Quick(request))

	injector, err := GetSafeInjector(object)
	if err != nil {
		log.Errorf("[%s] failed to get endpoint injector: %s", context.ID, err)
		return api.NewErrorResponse(http.StatusInternalServerError)
	}

	rating, err := injector.RatingService.GetRating(request.PathParameters["ratingId"])
	if err != nil {
		statusCode := faults.StatusCode(err)
		if statusCode >= http.StatusInternalServerError {
			log.Errorf("[%s] failed to get rating: %s", context.ID, err)
		} else {
			log.Warnf("[%s] rejected rating lookup: %s", context.ID, err)
		}

		return api.NewErrorResponse(statusCode)
	}

	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body: api.DataResponseBody{
			Data: rating,
		},
	}
}

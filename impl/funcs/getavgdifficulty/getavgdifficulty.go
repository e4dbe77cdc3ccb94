package getavgdifficulty

import (
	"fmt"
	"net/http"
	"strconv"

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
		return nil, fmt.Errorf("getavgdifficulty: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	Extracts the optional "level" query parameter.
//
// Parameters:
//
//	request The incoming API request.
//
// Returns:
//
//	The level, or nil when the parameter is absent.
//	An error when the parameter is present but not an integer.
func ExtractLevelParameter(request *api.APIRequest) (*int, error) {
	raw, ok := request.QueryParameters["level"]
	if !ok {
		return nil, nil
	}

	level, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("level must be an integer: %q", raw)
	}

	return &level, nil
}

// Description:
//
//	The router handler for: Average Song Difficulty
//	Computes the difficulty statistics of the catalog, optionally
//	narrowed by the "level" query parameter.
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

	level, err := ExtractLevelParameter(request)
	if err != nil {
		log.Warnf("[%s] rejected level parameter: %s", context.ID, err)
		return api.NewErrorResponse(http.StatusBadRequest)
	}

	aggregate, err := injector.CatalogService.AverageDifficulty(level)
	if err != nil {
		statusCode := faults.StatusCode(err)
		if statusCode >= http.StatusInternalServerError {
			log.Errorf("[%s] failed to aggregate difficulty: %s", context.ID, err)
		} else {
			log.Warnf("[%s] difficulty aggregation without match: %s", context.ID, err)
		}

		return api.NewErrorResponse(statusCode)
	}

	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body: api.DataResponseBody{
			Data: aggregate,
		},
	}
}

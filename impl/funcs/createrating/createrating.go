package createrating

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gostream-official/songs/impl/faults"
	"github.com/gostream-official/songs/impl/inject"
	"github.com/gostream-official/songs/pkg/api"
	"github.com/gostream-official/songs/pkg/marshal"
	"github.com/gostream-official/songs/pkg/parallel"

	"github.com/revx-official/output/log"
)

// The confirmation message for a created rating.
const createdMessage = "The item was created successfully"

// Description:
//
//	The request body for the create rating endpoint.
type CreateRatingRequestBody struct {

	// The id of the rated song.
	SongID string `json:"songId"`

	// The rating value, an integer between 1 and 5 inclusive.
	Rating int `json:"rating"`
}

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
		return nil, fmt.Errorf("createrating: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	Unmarshals the request body for this endpoint.
//
// Parameters:
//
//	request The original request.
//
// Returns:
//
//	The unmarshalled request body, or an error when unmarshalling
//	fails. A non-integer rating value fails here.
func ExtractRequestBody(request *api.APIRequest) (*CreateRatingRequestBody, error) {
	body := &CreateRatingRequestBody{}

	bytes := []byte(request.Body)
	err := json.Unmarshal(bytes, body)

	if err != nil {
		return nil, err
	}

	return body, nil
}

// Description:
//
//	The router handler for: Create Rating
//	Validation happens before the insert, a failed request never
//	writes to the store.
//
// Parameters:
//
//	request The incoming request.
//	object 	The injector. Contains injected dependencies.
//
// Returns:
//
//	An API response object. Successful creation answers with 201 and
//	a Location header pointing at the created rating.
func Handler(request *api.APIRequest, object interface{}) *api.APIResponse {
	context := parallel.NewContext()

	log.Infof("[%s] %s: %s", context.ID, request.Method, request.Path)
	log.Tracef("[%s] request: %s", context.ID, marshal.Quick(request))

	injector, err := GetSafeInjector(object)
	if err != nil {
		log.Errorf("[%s] failed to get endpoint injector: %s", context.ID, err)
		return api.NewErrorResponse(http.StatusInternalServerError)
	}

	requestBody, err := ExtractRequestBody(request)
	if err != nil {
		log.Warnf("[%s] failed to extract request body: %s", context.ID, err)
		return api.NewErrorResponse(http.StatusBadRequest)
	}

	ratingID, err := injector.RatingService.CreateRating(requestBody.SongID, requestBody.Rating)
	if err != nil {
		statusCode := faults.StatusCode(err)
		if statusCode >= http.StatusInternalServerError {
			log.Errorf("[%s] failed to create rating: %s", context.ID, err)
		} else {
			log.Warnf("[%s] rejected rating creation: %s", context.ID, err)
		}

		return api.NewErrorResponse(statusCode)
	}

	log.Tracef("[%s] successfully completed request", context.ID)
	return &api.APIResponse{
		StatusCode: http.StatusCreated,
		Headers: map[string]string{
			"Location": fmt.Sprintf("/songs/rating/%s", ratingID.Hex()),
		},
		Body: api.MessageResponseBody{
			Message: createdMessage,
		},
	}
}

package router

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gostream-official/songs/pkg/api"

	"github.com/gin-gonic/gin"
)

// Description:
//
//	The handler signature for all endpoints.
//	Handlers receive the decoded request and the injected dependency
//	object, and return a response to be serialized by the engine.
type HandlerFunc func(request *api.APIRequest, object interface{}) *api.APIResponse

// Description:
//
//	A single registered route.
//	Holds the handler and its injected dependency object.
type Route struct {
	handler  HandlerFunc
	injector interface{}
}

// Description:
//
//	The router engine.
//	A thin wrapper around gin which adapts gin contexts to API
//	requests and responses.
type Engine struct {
	gin *gin.Engine
}

// Description:
//
//	Creates a router engine with default behavior: JSON error bodies
//	for unmatched routes and recovered panics.
//
// Returns:
//
//	The created router engine.
func Default() *Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.RedirectTrailingSlash = false

	engine.Use(gin.CustomRecovery(func(context *gin.Context, recovered interface{}) {
		context.JSON(http.StatusInternalServerError, api.ErrorResponseBody{
			Error: http.StatusText(http.StatusInternalServerError),
		})
	}))

	engine.NoRoute(func(context *gin.Context) {
		context.JSON(http.StatusNotFound, api.ErrorResponseBody{
			Error: http.StatusText(http.StatusNotFound),
		})
	})

	return &Engine{
		gin: engine,
	}
}

// Description:
//
//	Registers a handler for the given HTTP method and path.
//	Path parameters use the ":name" syntax.
//
// Parameters:
//
//	method 	The HTTP method to register.
//	path 	The path to register.
//	handler The handler for the route.
//
// Returns:
//
//	The registered route, to allow dependency injection.
func (engine *Engine) HandleWith(method string, path string, handler HandlerFunc) *Route {
	route := &Route{
		handler: handler,
	}

	engine.gin.Handle(method, path, func(context *gin.Context) {
		request := extractRequest(context)
		response := route.handler(request, route.injector)

		writeResponse(context, response)
	})

	return route
}

// Description:
//
//	Attaches a dependency object to the route.
//	The object is passed to the handler on every request.
//
// Parameters:
//
//	injector The dependency object to inject.
func (route *Route) Inject(injector interface{}) {
	route.injector = injector
}

// Description:
//
//	Starts the router engine on the given port.
//	Blocks until the underlying server terminates.
//
// Parameters:
//
//	port The port to listen on.
//
// Returns:
//
//	An error if the server terminates abnormally.
func (engine *Engine) Run(port int) error {
	return engine.gin.Run(fmt.Sprintf(":%d", port))
}

// Description:
//
//	Dispatches a request through the engine.
//	Satisfies http.Handler, which allows testing via httptest.
//
// Parameters:
//
//	writer 	The response writer.
//	request The request to dispatch.
func (engine *Engine) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	engine.gin.ServeHTTP(writer, request)
}

// Description:
//
//	Adapts a gin context to an API request.
//
// Parameters:
//
//	context The gin context of the current request.
//
// Returns:
//
//	The adapted API request.
func extractRequest(context *gin.Context) *api.APIRequest {
	body := ""
	if context.Request.Body != nil {
		bytes, err := io.ReadAll(context.Request.Body)
		if err == nil {
			body = string(bytes)
		}
	}

	pathParameters := make(map[string]string)
	for _, parameter := range context.Params {
		pathParameters[parameter.Key] = parameter.Value
	}

	queryParameters := make(map[string]string)
	for key, values := range context.Request.URL.Query() {
		if len(values) > 0 {
			queryParameters[key] = values[0]
		}
	}

	return &api.APIRequest{
		Method:          context.Request.Method,
		Path:            context.Request.URL.Path,
		Body:            body,
		PathParameters:  pathParameters,
		QueryParameters: queryParameters,
	}
}

// Description:
//
//	Serializes an API response into the gin context.
//	Responses without a body produce an empty JSON response with the
//	given status code.
//
// Parameters:
//
//	context 	The gin context of the current request.
//	response 	The response to serialize.
func writeResponse(context *gin.Context, response *api.APIResponse) {
	if response == nil {
		context.JSON(http.StatusInternalServerError, api.ErrorResponseBody{
			Error: http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	for key, value := range response.Headers {
		context.Header(key, value)
	}

	if response.Body == nil {
		context.Header("Content-Type", "application/json")
		context.Status(response.StatusCode)
		return
	}

	context.JSON(response.StatusCode, response.Body)
}

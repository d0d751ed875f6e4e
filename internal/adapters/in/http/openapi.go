package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// SwaggerInstance is the name the API document is registered under with swag.
const SwaggerInstance = "warehouse"

//go:embed openapi.yaml
var openAPIDocument []byte

var registerSwaggerOnce sync.Once

// LoadOpenAPI parses the embedded description of the /api routes and checks
// that it is a valid OpenAPI 3 document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// OpenAPIValidator checks headers, path and query parameters and the JSON
// body of every request described by doc. A request that does not match is
// answered with 400 and never reaches its handler. Requests for routes the
// document does not describe are passed on untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return badRequest(ctx, validationMessage(err))
			}

			return next(ctx)
		}
	}, nil
}

// validationMessage names the offending parameter or body field without the
// schema dump kin-openapi puts into its own error text.
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return "Invalid request"
	}

	reason := requestErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(requestErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
			reason = field + ": " + reason
		}
	} else if requestErr.Err != nil {
		reason = requestErr.Err.Error()
	}

	switch {
	case requestErr.Parameter != nil:
		return fmt.Sprintf("Invalid %s parameter %s: %s", requestErr.Parameter.In, requestErr.Parameter.Name, reason)
	case requestErr.RequestBody != nil:
		return "Invalid request body: " + reason
	default:
		return "Invalid request: " + reason
	}
}

type swaggerDocument string

func (d swaggerDocument) ReadDoc() string {
	return string(d)
}

// RegisterDocs serves doc as JSON at /openapi.json and through Swagger UI
// under /swagger/.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(SwaggerInstance, swaggerDocument(raw))
	})

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(SwaggerInstance)))

	return nil
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// configOperations take a workflow configuration as their whole body.
var configOperations = map[string]bool{
	"generateWorkflow": true,
	"renderWorkflow":   true,
}

// WithRequestValidation checks /api requests against doc (see LoadSpec).
func WithRequestValidation(doc *openapi3.T) Option {
	return func(s *Server) {
		s.Spec = doc
	}
}

// requestValidator returns a middleware rejecting requests that do not match
// the operation documented for their route. Routes missing from doc pass through.
func (s *Server) requestValidator(doc *openapi3.T) (func(http.Handler) http.Handler, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to route OpenAPI spec: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				s.writeError(w, http.StatusBadRequest, requestErrorMessage(route, err), err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

func requestErrorMessage(route *routers.Route, err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		return fmt.Sprintf("Invalid %s parameter", reqErr.Parameter.Name)
	}
	if route.Operation != nil && configOperations[route.Operation.OperationID] {
		return "Invalid workflow configuration"
	}
	return "Invalid request body"
}

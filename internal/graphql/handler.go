package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/Belphemur/ShowGraph/internal/config"
	"github.com/Belphemur/ShowGraph/internal/metrics"
)

// maxRequestBodySize bounds POST bodies; queries against this schema are tiny.
const maxRequestBodySize = 1 << 20

// Request is a GraphQL-over-HTTP request, from a JSON body or URL parameters.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves GraphQL queries over GET and POST and, when enabled, the GraphiQL explorer.
type Handler struct {
	schema   *graphqlgo.Schema
	graphiQL bool
}

// NewHandler creates a handler executing queries against schema.
func NewHandler(schema *graphqlgo.Schema, graphiQL bool) *Handler {
	return &Handler{schema: schema, graphiQL: graphiQL}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := config.GetLogger()
	start := time.Now()
	defer func() {
		metrics.GraphQLRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	}()

	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST, OPTIONS")
		metrics.GraphQLRequestsTotal.WithLabelValues(r.Method, "invalid").Inc()
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.graphiQL && wantsGraphiQL(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, graphiQLPage)
		return
	}

	req, err := parseRequest(r)
	if err != nil {
		logger.Debug().Err(err).Str("method", r.Method).Msg("Rejected malformed GraphQL request")
		metrics.GraphQLRequestsTotal.WithLabelValues(r.Method, "invalid").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	response := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)

	outcome := "ok"
	if len(response.Errors) > 0 {
		outcome = "error"
		logger.Debug().Int("errors", len(response.Errors)).Str("operation", req.OperationName).Msg("GraphQL request completed with errors")
	}
	metrics.GraphQLRequestsTotal.WithLabelValues(r.Method, outcome).Inc()

	writeJSON(w, http.StatusOK, response)
}

// parseRequest extracts the query from URL parameters (GET, or POST without a body)
// or from a POST body in application/json or application/graphql form.
func parseRequest(r *http.Request) (*Request, error) {
	var req Request

	if r.Method == http.MethodPost && r.ContentLength != 0 {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		if len(body) > maxRequestBodySize {
			return nil, errors.New("request body too large")
		}

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch mediaType {
		case "application/graphql":
			req.Query = string(body)
		default:
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, fmt.Errorf("invalid JSON request body: %w", err)
			}
		}
	}

	params := r.URL.Query()
	if req.Query == "" {
		req.Query = params.Get("query")
	}
	if req.OperationName == "" {
		req.OperationName = params.Get("operationName")
	}
	if req.Variables == nil {
		if raw := params.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return nil, fmt.Errorf("invalid variables parameter: %w", err)
			}
		}
	}

	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("must provide query string")
	}
	return &req, nil
}

// wantsGraphiQL reports whether r is a browser navigation to the endpoint.
func wantsGraphiQL(r *http.Request) bool {
	return r.Method == http.MethodGet &&
		r.URL.Query().Get("query") == "" &&
		strings.Contains(r.Header.Get("Accept"), "text/html")
}

type errorBody struct {
	Errors []errorMessage `json:"errors"`
}

type errorMessage struct {
	Message string `json:"message"`
}

func errorResponse(message string) errorBody {
	return errorBody{Errors: []errorMessage{{Message: message}}}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to encode GraphQL response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

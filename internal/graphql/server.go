package graphql

import (
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/rs/cors"

	"github.com/Belphemur/ShowGraph/internal/config"
)

// Path is where the GraphQL endpoint is mounted.
const Path = "/graphql"

// NewRouter mounts the GraphQL handler on Path, wrapped with CORS and Sentry middleware.
func NewRouter(cfg *config.Config, schema *graphqlgo.Schema) http.Handler {
	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         600,
	})

	sentryMiddleware := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})

	mux := http.NewServeMux()
	mux.Handle(Path, corsMiddleware.Handler(sentryMiddleware.Handle(NewHandler(schema, cfg.GraphiQL))))
	return mux
}

// NewHTTPServer creates the public HTTP server for the GraphQL endpoint.
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	port := cfg.Server.Port
	if port == 0 {
		port = 4000
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

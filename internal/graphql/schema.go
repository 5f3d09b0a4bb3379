// Package graphql exposes the show schema over HTTP.
package graphql

import (
	"context"
	_ "embed"
	"fmt"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/Belphemur/ShowGraph/internal/config"
	"github.com/Belphemur/ShowGraph/internal/reporting"
	"github.com/Belphemur/ShowGraph/internal/resolver"
)

//go:embed schema.graphql
var schemaSDL string

// maxParallelism caps concurrently executing resolvers per request. Only the two
// root fields ever block on I/O.
const maxParallelism = 10

// NewSchema parses the SDL and binds it to r.
func NewSchema(r *resolver.Resolver) (*graphqlgo.Schema, error) {
	schema, err := graphqlgo.ParseSchema(schemaSDL, r,
		graphqlgo.MaxParallelism(maxParallelism),
		graphqlgo.Logger(panicLogger{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}
	return schema, nil
}

// panicLogger records resolver panics recovered by the executor.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger := config.GetLogger()
	logger.Error().Interface("panic", value).Msg("Recovered panic while resolving GraphQL field")
	reporting.Panic(ctx, value)
}

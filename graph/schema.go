// Package graph declares the Driver GraphQL schema and resolves it against a
// store.Store.
package graph

import (
	"context"
	"fmt"

	"driver-graphql-api/store"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

const sdl = `
	schema {
		query: RootQueryType
	}

	type Driver {
		id: String
		firstName: String
		lastName: String
		nationality: String
	}

	type RootQueryType {
		driver(id: String): Driver
	}
`

type options struct {
	logger        *zap.Logger
	maxDepth      int
	introspection bool
}

type Option func(*options)

// WithLogger routes resolver panics to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithMaxDepth limits query nesting; 0 means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func WithIntrospection(enabled bool) Option {
	return func(o *options) { o.introspection = enabled }
}

// NewSchema parses the Driver schema and binds it to s.
func NewSchema(s *store.Store, opts ...Option) (*graphql.Schema, error) {
	o := options{logger: zap.NewNop(), introspection: true}
	for _, opt := range opts {
		opt(&o)
	}

	schemaOpts := []graphql.SchemaOpt{
		graphql.Logger(&panicLogger{log: o.logger}),
		graphql.MaxDepth(o.maxDepth),
	}
	if !o.introspection {
		schemaOpts = append(schemaOpts, graphql.DisableIntrospection())
	}

	schema, err := graphql.ParseSchema(sdl, NewResolver(s), schemaOpts...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

type panicLogger struct {
	log *zap.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.Error("graphql: panic occurred", zap.Any("panic", value))
}

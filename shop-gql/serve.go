package shopgql

import (
	"fmt"

	"github.com/magicshop-live/magicshop-backend/graphiql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Mount attaches the graphql endpoint (and playground, when allowed) to an
// existing router, so REST and GraphQL share one server.
func Mount(router chi.Router, relay *relay.Handler) {
	router.Post("/graphql", middleware.NoCache(relay).ServeHTTP)
	router.Post("/graphql/*", middleware.NoCache(relay).ServeHTTP)
	if AllowIntrospection() {
		router.Get("/graphql", graphiql.New("/graphql"))
	}
}

// Construct an http relay that handles graphql requests
func GraphQLRelay(resolver Resolver) (*relay.Handler, error) {
	finalSchema := resolver.Schema()

	opts := []graphql.SchemaOpt{
		graphql.MaxDepth(15),
		graphql.UseFieldResolvers(),
	}
	if !AllowIntrospection() {
		opts = append(opts, graphql.DisableIntrospection())
	}

	schema, err := graphql.ParseSchema(finalSchema, resolver, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse schema: %w", err)
	}

	return &relay.Handler{Schema: schema}, nil
}

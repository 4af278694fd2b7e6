// Package shoprest provides REST API utilities with CORS support and common
// middleware for the magicshop backend services.
package shoprest

import (
	"fmt"
	"net/http"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/savaki/apigateway"
)

func Middlewares(service shopcli.Service, routes chi.Router) chi.Router {
	routes.Use(
		withCORS(),
		withLogger(shopcli.Logger(service)),
		middleware.Recoverer,
	)
	return routes
}

func Webserver(service shopcli.Service, routes chi.Router) error {
	logger := shopcli.Logger(service)

	if shopcli.CommonOpts.Console {
		logger.Info().Int("port", shopcli.CommonOpts.Port).Msg("starting http server")
		addr := fmt.Sprintf(":%v", shopcli.CommonOpts.Port)
		return http.ListenAndServe(addr, routes)
	}

	lambda.Start(apigateway.Wrap(routes, shopcli.CommonOpts.Env))
	return nil
}

func withCORS() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
	})
}

func withLogger(logger zerolog.Logger) func(handler http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := logger.WithContext(req.Context())
			req = req.WithContext(ctx)
			handler.ServeHTTP(w, req)
		})
	}
}

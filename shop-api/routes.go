package main

import (
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	shopgql "github.com/magicshop-live/magicshop-backend/shop-gql"
	shoprest "github.com/magicshop-live/magicshop-backend/shop-rest"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes(service shopcli.Service) (chi.Router, error) {
	router := chi.NewRouter()
	shoprest.Middlewares(service, router)

	router.Get("/", shoprest.Handler(s.handleRoot))
	router.Post("/paymentSheet", shoprest.Handler(s.handlePaymentSheet))
	router.Get("/prices", shoprest.Handler(s.handlePrices))
	router.Post("/createCustomer", shoprest.Handler(s.handleCreateCustomer))
	router.Post("/searchCustomer", shoprest.Handler(s.handleSearchCustomer))
	router.Post("/updateCustomerShippingInfo", shoprest.Handler(s.handleUpdateShipping))
	router.Get("/createChatToken", shoprest.Handler(s.handleCreateChatToken))
	router.Get("/broadcastInfo", shoprest.Handler(s.handleBroadcastInfo))
	router.Get("/stripeAccountId", shoprest.Handler(s.handleStripeAccountID))
	router.Get("/liveStreams", shoprest.Handler(s.handleLiveStreams))

	resolver := &Resolver{server: s}
	relay, err := shopgql.GraphQLRelay(resolver)
	if err != nil {
		return nil, err
	}
	shopgql.Mount(router, relay)

	return router, nil
}

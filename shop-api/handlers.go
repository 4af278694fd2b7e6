package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/magicshop-live/magicshop-backend/catalog"
	"github.com/magicshop-live/magicshop-backend/chat"
	"github.com/magicshop-live/magicshop-backend/feed"
	"github.com/magicshop-live/magicshop-backend/payments"
	shoprest "github.com/magicshop-live/magicshop-backend/shop-rest"

	"github.com/stripe/stripe-go/v74"
)

type PaymentService interface {
	PaymentSheet(ctx context.Context, input payments.PaymentSheetInput) (payments.PaymentSheetOutput, error)
	ListPrices(ctx context.Context, accountID string) ([]map[string]interface{}, error)
	CreateCustomer(ctx context.Context, externalUserID, email string) (*stripe.Customer, error)
	FindCustomerByExternalID(ctx context.Context, externalUserID string) (payments.CustomerSummary, error)
	UpdateShipping(ctx context.Context, customerID string, shipping payments.ShippingInput) (*stripe.Customer, error)
}

type CatalogService interface {
	BroadcastInfo(ctx context.Context, sellerUserID string) (*catalog.BroadcastInfo, error)
	StripeAccountID(ctx context.Context, channelARN string) (*string, error)
}

type ChatService interface {
	CreateToken(ctx context.Context, input chat.TokenInput) (chat.Token, error)
}

type FeedService interface {
	LiveStreams(ctx context.Context) (feed.Payload, error)
}

type Server struct {
	Payments PaymentService
	Catalog  CatalogService
	Chat     ChatService
	Feed     FeedService
}

func (s *Server) handleRoot(w http.ResponseWriter, req *http.Request) error {
	return shoprest.Respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

type paymentSheetRequest struct {
	CustomerID    string `json:"customerId"`
	PaymentAmount int64  `json:"paymentAmount"`
	AccountID     string `json:"accountId"`
}

func (s *Server) handlePaymentSheet(w http.ResponseWriter, req *http.Request) error {
	var body paymentSheetRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return shoprest.BadRequest("invalid request body")
	}

	out, err := s.Payments.PaymentSheet(req.Context(), payments.PaymentSheetInput{
		CustomerID: body.CustomerID,
		Amount:     body.PaymentAmount,
		AccountID:  body.AccountID,
	})
	if isValidationError(err) {
		return shoprest.BadRequest(err.Error())
	}
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, out)
}

func (s *Server) handlePrices(w http.ResponseWriter, req *http.Request) error {
	accountID := req.URL.Query().Get("accountId")
	if accountID == "" {
		return shoprest.BadRequest("accountId is required")
	}

	prices, err := s.Payments.ListPrices(req.Context(), accountID)
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, map[string]interface{}{"prices": prices})
}

type createCustomerRequest struct {
	CustomerAmplifyUserID string `json:"customerAmplifyUserId"`
	CustomerEmail         string `json:"customerEmail"`
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, req *http.Request) error {
	var body createCustomerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return shoprest.BadRequest("invalid request body")
	}

	customer, err := s.Payments.CreateCustomer(req.Context(), body.CustomerAmplifyUserID, body.CustomerEmail)
	if isValidationError(err) {
		return shoprest.BadRequest(err.Error())
	}
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, map[string]interface{}{"customer": customer})
}

type searchCustomerRequest struct {
	CustomerAmplifyUserID string `json:"customerAmplifyUserId"`
}

func (s *Server) handleSearchCustomer(w http.ResponseWriter, req *http.Request) error {
	var body searchCustomerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return shoprest.BadRequest("invalid request body")
	}

	customer, err := s.Payments.FindCustomerByExternalID(req.Context(), body.CustomerAmplifyUserID)
	if errors.Is(err, payments.ErrCustomerNotFound) {
		return shoprest.NotFound("customer not found", err)
	}
	if isValidationError(err) {
		return shoprest.BadRequest(err.Error())
	}
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, map[string]interface{}{"customer": customer})
}

type updateShippingRequest struct {
	CustomerStripeID          string `json:"customerStripeId"`
	CustomerFullName          string `json:"customerFullName"`
	ShippingAddressLine1      string `json:"shippingAddressLine1"`
	ShippingAddressLine2      string `json:"shippingAddressLine2"`
	ShippingAddressCity       string `json:"shippingAddressCity"`
	ShippingAddressState      string `json:"shippingAddressState"`
	ShippingAddressPostalCode string `json:"shippingAddressPostalCode"`
	ShippingAddressCountry    string `json:"shippingAddressCountry"`
}

func (s *Server) handleUpdateShipping(w http.ResponseWriter, req *http.Request) error {
	var body updateShippingRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return shoprest.BadRequest("invalid request body")
	}

	customer, err := s.Payments.UpdateShipping(req.Context(), body.CustomerStripeID, payments.ShippingInput{
		Name:       body.CustomerFullName,
		Line1:      body.ShippingAddressLine1,
		Line2:      body.ShippingAddressLine2,
		City:       body.ShippingAddressCity,
		State:      body.ShippingAddressState,
		PostalCode: body.ShippingAddressPostalCode,
		Country:    body.ShippingAddressCountry,
	})
	if isValidationError(err) {
		return shoprest.BadRequest(err.Error())
	}
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, map[string]interface{}{"customer": customer})
}

func (s *Server) handleCreateChatToken(w http.ResponseWriter, req *http.Request) error {
	query := req.URL.Query()
	roomARN := query.Get("roomId")
	userID := query.Get("userId")
	if roomARN == "" {
		return shoprest.BadRequest("roomId is required")
	}
	if userID == "" {
		return shoprest.BadRequest("userId is required")
	}

	token, err := s.Chat.CreateToken(req.Context(), chat.TokenInput{
		RoomARN:             roomARN,
		UserID:              userID,
		CapabilitiesProfile: query.Get("capabilities"),
	})
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, token)
}

func (s *Server) handleBroadcastInfo(w http.ResponseWriter, req *http.Request) error {
	userID := req.URL.Query().Get("userId")
	if userID == "" {
		return shoprest.BadRequest("userId is required")
	}

	info, err := s.Catalog.BroadcastInfo(req.Context(), userID)
	if errors.Is(err, catalog.ErrSellerNotFound) {
		return shoprest.NotFound("seller not found", err)
	}
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, info)
}

func (s *Server) handleStripeAccountID(w http.ResponseWriter, req *http.Request) error {
	channelARN := req.URL.Query().Get("channelArn")
	if channelARN == "" {
		return shoprest.BadRequest("channelArn is required")
	}

	accountID, err := s.Catalog.StripeAccountID(req.Context(), channelARN)
	if err != nil {
		return err
	}
	// accountID may be nil; the client treats null as "no seller on this channel"
	return shoprest.Respond(w, http.StatusOK, map[string]interface{}{"stripeConnectAccountId": accountID})
}

func (s *Server) handleLiveStreams(w http.ResponseWriter, req *http.Request) error {
	payload, err := s.Feed.LiveStreams(req.Context())
	if err != nil {
		return err
	}
	return shoprest.Respond(w, http.StatusOK, payload)
}

func isValidationError(err error) bool {
	return errors.Is(err, payments.ErrMissingCustomer) ||
		errors.Is(err, payments.ErrMissingAmount) ||
		errors.Is(err, payments.ErrMissingAccount)
}

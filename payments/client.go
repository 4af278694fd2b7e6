// Package payments proxies the Stripe operations the mobile client needs:
// native payment-sheet setup with marketplace fee splitting, connected-account
// price listings, and customer management.
package payments

import (
	"fmt"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	shopsecret "github.com/magicshop-live/magicshop-backend/shop-secret"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stripe/stripe-go/v74/client"
)

type stripeSecret struct {
	APIKey         string `json:"api_key"`
	PublishableKey string `json:"publishable_key"`
}

// NewService loads the Stripe keys from Secrets Manager and returns a ready
// Service. The secret key never leaves this process; the publishable key is
// handed to clients as part of the payment-sheet response.
func NewService(s *session.Session, secretName string, metrics shopcli.Metrics) (*Service, error) {
	var secret stripeSecret
	if err := shopsecret.LoadSecret(s, secretName, &secret); err != nil {
		return nil, fmt.Errorf("unable to load stripe secret: %w", err)
	}
	if secret.APIKey == "" {
		return nil, fmt.Errorf("stripe secret %v has no api_key", secretName)
	}

	var api client.API
	api.Init(secret.APIKey, nil)

	return &Service{
		client:         &api,
		publishableKey: secret.PublishableKey,
		metrics:        metrics,
	}, nil
}

package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"
)

const externalIDKey = "externalUserId"

// CustomerSummary is the subset of a customer the client reads back when
// restoring a checkout session.
type CustomerSummary struct {
	ID       string                  `json:"id"`
	Shipping *stripe.ShippingDetails `json:"shipping"`
}

type ShippingInput struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// CreateCustomer creates a Stripe customer tagged with the app user id, so it
// can be found again across devices without storing the mapping ourselves.
func (s *Service) CreateCustomer(ctx context.Context, externalUserID, email string) (*stripe.Customer, error) {
	if externalUserID == "" {
		return nil, ErrMissingCustomer
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata(externalIDKey, externalUserID)

	customer, err := s.client.Customers.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateCustomer, err)
	}
	return customer, nil
}

// FindCustomerByExternalID returns the first customer whose metadata matches
// the app user id, or ErrCustomerNotFound when none does.
func (s *Service) FindCustomerByExternalID(ctx context.Context, externalUserID string) (CustomerSummary, error) {
	if externalUserID == "" {
		return CustomerSummary{}, ErrMissingCustomer
	}

	iter := s.client.Customers.Search(&stripe.CustomerSearchParams{
		SearchParams: stripe.SearchParams{
			Context: ctx,
			Query:   fmt.Sprintf("metadata[%q]:%q", externalIDKey, externalUserID),
			Limit:   stripe.Int64(1),
		},
	})

	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return CustomerSummary{}, fmt.Errorf("customer search failed: %w", err)
		}
		return CustomerSummary{}, ErrCustomerNotFound
	}

	customer := iter.Customer()
	return CustomerSummary{
		ID:       customer.ID,
		Shipping: customer.Shipping,
	}, nil
}

// UpdateShipping replaces the customer's shipping sub-object.
func (s *Service) UpdateShipping(ctx context.Context, customerID string, shipping ShippingInput) (*stripe.Customer, error) {
	if customerID == "" {
		return nil, ErrMissingCustomer
	}

	params := &stripe.CustomerParams{
		Shipping: &stripe.CustomerShippingParams{
			Name: stripe.String(shipping.Name),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(shipping.Line1),
				Line2:      stripe.String(shipping.Line2),
				City:       stripe.String(shipping.City),
				State:      stripe.String(shipping.State),
				PostalCode: stripe.String(shipping.PostalCode),
				Country:    stripe.String(shipping.Country),
			},
		},
	}
	params.Context = ctx

	customer, err := s.client.Customers.Update(customerID, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpdateCustomer, err)
	}
	return customer, nil
}

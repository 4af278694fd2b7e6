package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
)

// ListPrices returns the price catalog of a connected account with the
// product expanded, each entry flattened to dotted keys plus the product_*
// convenience fields the client binds to. Order is whatever Stripe returns.
func (s *Service) ListPrices(ctx context.Context, accountID string) ([]map[string]interface{}, error) {
	if accountID == "" {
		return nil, ErrMissingAccount
	}

	params := &stripe.PriceListParams{
		ListParams: stripe.ListParams{
			Context:       ctx,
			StripeAccount: stripe.String(accountID),
		},
	}
	params.AddExpand("data.product")

	prices := []map[string]interface{}{}
	iter := s.client.Prices.List(params)
	for iter.Next() {
		price := iter.Price()

		flattened, err := flattenPrice(price)
		if err != nil {
			return nil, err
		}
		if price.Product != nil {
			flattened["product_id"] = price.Product.ID
			flattened["product_name"] = price.Product.Name
			flattened["product_description"] = price.Product.Description
		}
		prices = append(prices, flattened)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListPrices, err)
	}

	return prices, nil
}

// flattenPrice round-trips the typed price through JSON so the flattened keys
// match the Stripe wire names rather than Go field names.
func flattenPrice(price *stripe.Price) (map[string]interface{}, error) {
	raw, err := json.Marshal(price)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal price %v: %w", price.ID, err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unable to unmarshal price %v: %w", price.ID, err)
	}
	return Flatten(decoded), nil
}

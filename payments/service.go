package payments

import (
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/stripe/stripe-go/v74/client"
)

const (
	// currency is fixed for the marketplace; amounts are minor units (cents).
	currency = "cad"

	// stripeAPIVersion pins the ephemeral-key schema the mobile SDK expects.
	stripeAPIVersion = "2022-11-15"

	feePercent = 8
)

type Service struct {
	client         *client.API
	publishableKey string
	metrics        shopcli.Metrics
}

// ApplicationFee is the marketplace margin withheld from a payment:
// floor(amount * 8%). Integer division floors for all non-negative amounts,
// so the fee is always in [0, amount].
func ApplicationFee(amount int64) int64 {
	return amount * feePercent / 100
}

package payments

import (
	"context"
	"fmt"
	"time"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v74"
	"golang.org/x/sync/errgroup"
)

type PaymentSheetInput struct {
	CustomerID string
	Amount     int64
	AccountID  string
}

// PaymentSheetOutput carries the secrets the mobile SDK needs to render a
// native payment sheet. Field names are part of the client contract.
type PaymentSheetOutput struct {
	PaymentIntent  string `json:"paymentIntent"`
	EphemeralKey   string `json:"ephemeralKey"`
	Customer       string `json:"customer"`
	PublishableKey string `json:"publishableKey"`
}

// PaymentSheet creates a fresh ephemeral key and payment intent for one
// checkout attempt. Not idempotent: every call creates new provider-side
// resources, and an ephemeral key orphaned by a failed intent is not revoked.
func (s *Service) PaymentSheet(ctx context.Context, input PaymentSheetInput) (out PaymentSheetOutput, err error) {
	defer func(begin time.Time) {
		s.metrics.Timing(ctx, shopcli.ResponseTimeMetric, begin,
			map[shopcli.DimensionName]string{shopcli.OperationNameDimension: "PaymentSheet"})
		zerolog.Ctx(ctx).Info().
			Dur("elapsed", time.Since(begin)).
			Err(err).
			Int64("amount", input.Amount).
			Str("account", input.AccountID).
			Msg("payment sheet prepared")
	}(time.Now())

	if input.CustomerID == "" {
		return PaymentSheetOutput{}, ErrMissingCustomer
	}
	if input.Amount <= 0 {
		return PaymentSheetOutput{}, ErrMissingAmount
	}
	if input.AccountID == "" {
		return PaymentSheetOutput{}, ErrMissingAccount
	}

	var (
		ephemeralSecret string
		intentSecret    string
	)

	// The two creates only depend on the inputs, not on each other.
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		params := &stripe.EphemeralKeyParams{
			Customer:      stripe.String(input.CustomerID),
			StripeVersion: stripe.String(stripeAPIVersion),
		}
		params.Context = ctx

		key, err := s.client.EphemeralKeys.New(params)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCreateEphemeralKey, err)
		}
		ephemeralSecret = key.Secret
		return nil
	})
	group.Go(func() error {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(input.Amount),
			Currency: stripe.String(currency),
			Customer: stripe.String(input.CustomerID),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
			ApplicationFeeAmount: stripe.Int64(ApplicationFee(input.Amount)),
			TransferData: &stripe.PaymentIntentTransferDataParams{
				Destination: stripe.String(input.AccountID),
			},
		}
		params.Context = ctx

		intent, err := s.client.PaymentIntents.New(params)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCreatePaymentIntent, err)
		}
		intentSecret = intent.ClientSecret
		return nil
	})
	if err := group.Wait(); err != nil {
		return PaymentSheetOutput{}, err
	}

	return PaymentSheetOutput{
		PaymentIntent:  intentSecret,
		EphemeralKey:   ephemeralSecret,
		Customer:       input.CustomerID,
		PublishableKey: s.publishableKey,
	}, nil
}

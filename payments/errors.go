package payments

import "errors"

var (
	ErrMissingCustomer = errors.New("customerId is required")
	ErrMissingAmount   = errors.New("paymentAmount is required")
	ErrMissingAccount  = errors.New("accountId is required")

	ErrCustomerNotFound = errors.New("customer not found")

	ErrCreateEphemeralKey  = errors.New("failed to create ephemeral key")
	ErrCreatePaymentIntent = errors.New("failed to create payment intent")
	ErrCreateCustomer      = errors.New("failed to create customer")
	ErrUpdateCustomer      = errors.New("failed to update customer")
	ErrListPrices          = errors.New("failed to list prices")
)

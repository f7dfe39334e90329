// Package payments defines the payment-provider contract the handlers
// depend on. The concrete Stripe-backed implementation lives in
// internal/platform/stripe.
package payments

import "context"

// IntentCreator creates a payment intent with the external provider for
// the given amount in the smallest currency unit and returns the client
// secret the frontend completes the charge with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// AmountCents converts a decimal price to an integer amount in cents.
// The conversion truncates, matching the provider contract the original
// clients were built against.
func AmountCents(price float64) int64 {
	return int64(price * 100)
}

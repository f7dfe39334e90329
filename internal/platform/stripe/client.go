// Package stripe adapts the Stripe SDK to the payments.IntentCreator
// contract used by the API handlers.
package stripe

import (
	"context"
	"fmt"

	stripesdk "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/medcamp/medcamp-api/internal/config"
	"github.com/medcamp/medcamp-api/internal/platform/logger"
	"github.com/medcamp/medcamp-api/internal/service/payments"
)

// IntentClient creates card payment intents through the Stripe API.
type IntentClient struct {
	api      *client.API
	currency string
}

// Ensure IntentClient implements the payments.IntentCreator interface
var _ payments.IntentCreator = (*IntentClient)(nil)

// NewIntentClient creates a Stripe-backed intent creator from configuration.
// The API client is constructed once at startup and injected where needed,
// never recreated per request.
func NewIntentClient(cfg config.StripeConfig) *IntentClient {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &IntentClient{
		api:      api,
		currency: cfg.Currency,
	}
}

// CreateIntent creates a card payment intent for the given amount in the
// smallest currency unit and returns its client secret.
func (c *IntentClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	log := logger.FromContext(ctx)

	params := &stripesdk.PaymentIntentParams{
		Params:             stripesdk.Params{Context: ctx},
		Amount:             stripesdk.Int64(amountCents),
		Currency:           stripesdk.String(c.currency),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		log.Error("failed to create payment intent",
			"error", err,
			"amount_cents", amountCents,
			"currency", c.currency)
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	log.Debug("payment intent created",
		"intent_id", intent.ID,
		"amount_cents", amountCents)

	return intent.ClientSecret, nil
}

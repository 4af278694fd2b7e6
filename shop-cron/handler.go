// Package shopcron provides utilities for building scheduled Lambda functions.
package shopcron

import (
	"context"
	"encoding/json"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
)

type RunCallback func(ctx context.Context) error

type Handler struct {
	service shopcli.Service
	logger  zerolog.Logger

	runOnce RunCallback
}

func NewHandler(
	service shopcli.Service,
	runOnce RunCallback,
) *Handler {
	return &Handler{
		service: service,
		logger:  shopcli.Logger(service),
		runOnce: runOnce,
	}
}

func (h *Handler) RunOnce(ctx context.Context, _ json.RawMessage) error {
	h.logger.Info().Msg("running scheduled task")
	return h.runOnce(h.logger.WithContext(ctx))
}

func (h *Handler) Start() error {
	switch {
	case shopcli.CommonOpts.Console:
		return h.runOnce(h.logger.WithContext(context.Background()))

	default:
		lambda.Start(h.RunOnce)
	}
	return nil
}

package main

import (
	"context"
	"errors"

	_ "embed"

	"github.com/magicshop-live/magicshop-backend/catalog"
	shopgql "github.com/magicshop-live/magicshop-backend/shop-gql"
)

//go:embed schema.gql
var schema string

// Resolver is the read-only GraphQL mirror of the lookup endpoints. Writes
// (payments, shipping, chat tokens) stay REST-only.
type Resolver struct {
	server *Server
}

var _ shopgql.Resolver = (*Resolver)(nil)

func (r *Resolver) Schema() string {
	return schema
}

type broadcastInfoView struct {
	SellerData shopgql.JSON
	StreamInfo *streamInfoView
}

type streamInfoView struct {
	IngestServer string
	PlaybackURL  string
	StreamKey    string
	ChatRoomARN  string
}

type liveStreamView struct {
	ChannelARN  string
	Health      string
	StartTime   string
	State       string
	StreamID    string
	ViewerCount int32
}

func (r *Resolver) BroadcastInfo(ctx context.Context, args struct{ SellerUserID string }) (*broadcastInfoView, error) {
	info, err := r.server.Catalog.BroadcastInfo(ctx, args.SellerUserID)
	if errors.Is(err, catalog.ErrSellerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	view := &broadcastInfoView{SellerData: shopgql.JSON{Data: info.Seller}}
	if info.Stream != nil {
		view.StreamInfo = &streamInfoView{
			IngestServer: info.Stream.IngestServer,
			PlaybackURL:  info.Stream.PlaybackURL,
			StreamKey:    info.Stream.StreamKey,
			ChatRoomARN:  info.Stream.ChatRoomARN,
		}
	}
	return view, nil
}

func (r *Resolver) StripeAccountID(ctx context.Context, args struct{ ChannelARN string }) (*string, error) {
	return r.server.Catalog.StripeAccountID(ctx, args.ChannelARN)
}

func (r *Resolver) LiveStreams(ctx context.Context) ([]liveStreamView, error) {
	payload, err := r.server.Feed.LiveStreams(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]liveStreamView, 0, len(payload.Streams))
	for _, stream := range payload.Streams {
		views = append(views, liveStreamView{
			ChannelARN:  stream.ChannelARN,
			Health:      stream.Health,
			StartTime:   stream.StartTime,
			State:       stream.State,
			StreamID:    stream.StreamID,
			ViewerCount: int32(stream.ViewerCount),
		})
	}
	return views, nil
}

func (r *Resolver) Prices(ctx context.Context, args struct{ AccountID string }) ([]shopgql.JSON, error) {
	prices, err := r.server.Payments.ListPrices(ctx, args.AccountID)
	if err != nil {
		return nil, err
	}

	views := make([]shopgql.JSON, 0, len(prices))
	for _, price := range prices {
		views = append(views, shopgql.JSON{Data: price})
	}
	return views, nil
}

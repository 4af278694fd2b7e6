// Package catalog answers the two session lookups the mobile app makes before
// broadcasting or buying: a seller's own stream configuration, and the Stripe
// account behind a channel a viewer is watching.
package catalog

import (
	"context"
	"time"

	"github.com/magicshop-live/magicshop-backend/catalog/sellerdao"
	"github.com/magicshop-live/magicshop-backend/catalog/streamdao"
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	"github.com/rs/zerolog"
)

type SellerStore interface {
	Get(ctx context.Context, sellerUserID string) (*sellerdao.Record, error)
}

type StreamStore interface {
	GetBySeller(ctx context.Context, sellerID string) (*streamdao.Record, error)
	FindByChannelARN(ctx context.Context, channelARN string) (*streamdao.Record, error)
}

type Service struct {
	sellers SellerStore
	streams StreamStore
	metrics shopcli.Metrics
}

func New(sellers SellerStore, streams StreamStore, metrics shopcli.Metrics) *Service {
	return &Service{
		sellers: sellers,
		streams: streams,
		metrics: metrics,
	}
}

// StreamInfo is the projection of a stream row handed to the broadcasting
// seller. The stream key is a credential, so nothing beyond these fields
// leaves the service.
type StreamInfo struct {
	IngestServer string `json:"awsIVSIngestServer"`
	PlaybackURL  string `json:"awsIVSPlaybackURL"`
	StreamKey    string `json:"awsIVSStreamKey"`
	ChatRoomARN  string `json:"chatRoomArn"`
}

type BroadcastInfo struct {
	Seller *sellerdao.Record `json:"sellerData"`
	Stream *StreamInfo       `json:"streamInfo"`
}

// BroadcastInfo returns the seller row and stream projection for an app user.
// Returns ErrSellerNotFound, without touching the stream table, when the user
// is not a seller.
func (s *Service) BroadcastInfo(ctx context.Context, sellerUserID string) (out *BroadcastInfo, err error) {
	defer func(begin time.Time) {
		s.metrics.Timing(ctx, shopcli.ResponseTimeMetric, begin,
			map[shopcli.DimensionName]string{shopcli.OperationNameDimension: "BroadcastInfo"})
		zerolog.Ctx(ctx).Info().
			Dur("elapsed", time.Since(begin)).
			Err(err).
			Str("sellerUserId", sellerUserID).
			Msg("broadcast info lookup")
	}(time.Now())

	seller, err := s.sellers.Get(ctx, sellerUserID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}

	stream, err := s.streams.GetBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}

	info := &BroadcastInfo{Seller: seller}
	if stream != nil {
		info.Stream = &StreamInfo{
			IngestServer: stream.IngestServer,
			PlaybackURL:  stream.PlaybackURL,
			StreamKey:    stream.StreamKey,
			ChatRoomARN:  stream.ChatRoomARN,
		}
	}
	return info, nil
}

// StripeAccountID resolves the connected account selling on a channel.
// Returns nil when no stream row matches the ARN; the caller responds with an
// explicit null rather than an error.
func (s *Service) StripeAccountID(ctx context.Context, channelARN string) (*string, error) {
	stream, err := s.streams.FindByChannelARN(ctx, channelARN)
	if err != nil {
		return nil, err
	}
	if stream == nil || stream.StripeConnectAccountID == "" {
		return nil, nil
	}
	return &stream.StripeConnectAccountID, nil
}

// Package feed serves the market feed of live streams. IVS is only polled by
// the scheduled refresher; the request path reads a single pre-serialized
// cache row, so the feed costs one DynamoDB read per request regardless of
// how many shoppers are browsing.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/magicshop-live/magicshop-backend/catalog/livecachedao"
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ivs"
	"github.com/aws/aws-sdk-go/service/ivs/ivsiface"
	"github.com/rs/zerolog"
)

// Stream is one live channel as the mobile feed consumes it.
type Stream struct {
	ChannelARN  string `json:"channelArn"`
	Health      string `json:"health"`
	StartTime   string `json:"startTime"` // ISO-8601
	State       string `json:"state"`
	StreamID    string `json:"streamId"`
	ViewerCount int64  `json:"viewerCount"`
}

type Payload struct {
	Streams []Stream `json:"streams"`
}

type CacheStore interface {
	Get(ctx context.Context, id string) (*livecachedao.Record, error)
	Put(ctx context.Context, record livecachedao.Record) error
}

type Service struct {
	cache   CacheStore
	api     ivsiface.IVSAPI
	metrics shopcli.Metrics
}

func New(cache CacheStore, api ivsiface.IVSAPI, metrics shopcli.Metrics) *Service {
	return &Service{
		cache:   cache,
		api:     api,
		metrics: metrics,
	}
}

// LiveStreams returns the cached feed, or an empty feed when the cache row
// has not been written yet.
func (s *Service) LiveStreams(ctx context.Context) (Payload, error) {
	record, err := s.cache.Get(ctx, livecachedao.PrimaryCacheKey)
	if err != nil {
		return Payload{}, err
	}
	if record == nil {
		return Payload{Streams: []Stream{}}, nil
	}

	var payload Payload
	if err := json.Unmarshal([]byte(record.LiveStreams), &payload); err != nil {
		return Payload{}, fmt.Errorf("corrupt livestream cache: %w", err)
	}
	if payload.Streams == nil {
		payload.Streams = []Stream{}
	}
	return payload, nil
}

// Refresh polls IVS for currently live channels and overwrites the cache row.
func (s *Service) Refresh(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		zerolog.Ctx(ctx).Info().
			Dur("elapsed", time.Since(begin)).
			Err(err).
			Msg("refreshed livestream cache")
	}(time.Now())

	streams := []Stream{}
	input := &ivs.ListStreamsInput{MaxResults: aws.Int64(100)}
	for {
		out, err := s.api.ListStreamsWithContext(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to list streams: %w", err)
		}
		for _, summary := range out.Streams {
			streams = append(streams, Stream{
				ChannelARN:  aws.StringValue(summary.ChannelArn),
				Health:      aws.StringValue(summary.Health),
				StartTime:   formatStartTime(summary.StartTime),
				State:       aws.StringValue(summary.State),
				StreamID:    aws.StringValue(summary.StreamId),
				ViewerCount: aws.Int64Value(summary.ViewerCount),
			})
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	raw, err := json.Marshal(Payload{Streams: streams})
	if err != nil {
		return fmt.Errorf("failed to marshal feed payload: %w", err)
	}
	s.metrics.Gauge(ctx, shopcli.LiveStreamCountMetric, float64(len(streams)))

	return s.cache.Put(ctx, livecachedao.Record{
		ID:          livecachedao.PrimaryCacheKey,
		LiveStreams: string(raw),
		UpdatedAt:   time.Now().Unix(),
	})
}

func formatStartTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

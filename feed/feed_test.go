package feed

import (
	"context"
	"testing"
	"time"

	"github.com/magicshop-live/magicshop-backend/catalog/livecachedao"
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/aws/aws-sdk-go/service/ivs"
	"github.com/aws/aws-sdk-go/service/ivs/ivsiface"
	"github.com/tj/assert"
)

type fakeCache struct {
	records map[string]*livecachedao.Record
}

func (f *fakeCache) Get(_ context.Context, id string) (*livecachedao.Record, error) {
	return f.records[id], nil
}

func (f *fakeCache) Put(_ context.Context, record livecachedao.Record) error {
	if f.records == nil {
		f.records = map[string]*livecachedao.Record{}
	}
	f.records[record.ID] = &record
	return nil
}

type fakeCloudwatch struct {
	cloudwatchiface.CloudWatchAPI
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudwatch) PutMetricDataWithContext(_ aws.Context, input *cloudwatch.PutMetricDataInput, _ ...request.Option) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, input)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

type fakeIVS struct {
	ivsiface.IVSAPI
	pages [][]*ivs.StreamSummary
	calls int
}

func (f *fakeIVS) ListStreamsWithContext(_ aws.Context, input *ivs.ListStreamsInput, _ ...request.Option) (*ivs.ListStreamsOutput, error) {
	page := f.pages[f.calls]
	f.calls++

	out := &ivs.ListStreamsOutput{Streams: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestRefreshThenRead(t *testing.T) {
	started := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	api := &fakeIVS{pages: [][]*ivs.StreamSummary{
		{
			{
				ChannelArn:  aws.String("arn:channel/abc"),
				Health:      aws.String("HEALTHY"),
				StartTime:   &started,
				State:       aws.String("LIVE"),
				StreamId:    aws.String("st-1"),
				ViewerCount: aws.Int64(42),
			},
		},
		{
			{
				ChannelArn: aws.String("arn:channel/def"),
				Health:     aws.String("STARVING"),
				State:      aws.String("LIVE"),
				StreamId:   aws.String("st-2"),
			},
		},
	}}

	cache := &fakeCache{}
	cw := &fakeCloudwatch{}
	service := New(cache, api, shopcli.NewMetrics(shopcli.Service{Name: "shop-feed-cron"}, cw))
	ctx := context.Background()

	err := service.Refresh(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 2, api.calls) // paginated

	assert.Len(t, cw.inputs, 1)
	datum := cw.inputs[0].MetricData[0]
	assert.Equal(t, string(shopcli.LiveStreamCountMetric), aws.StringValue(datum.MetricName))
	assert.Equal(t, float64(2), aws.Float64Value(datum.Value))

	payload, err := service.LiveStreams(ctx)
	assert.Nil(t, err)
	assert.Len(t, payload.Streams, 2)
	assert.Equal(t, Stream{
		ChannelARN:  "arn:channel/abc",
		Health:      "HEALTHY",
		StartTime:   "2024-06-01T18:30:00Z",
		State:       "LIVE",
		StreamID:    "st-1",
		ViewerCount: 42,
	}, payload.Streams[0])
}

func TestLiveStreamsEmptyCache(t *testing.T) {
	service := New(&fakeCache{}, &fakeIVS{}, shopcli.Metrics{})

	payload, err := service.LiveStreams(context.Background())
	assert.Nil(t, err)
	assert.NotNil(t, payload.Streams)
	assert.Len(t, payload.Streams, 0)
}

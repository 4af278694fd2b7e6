package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/magicshop-live/magicshop-backend/catalog/sellerdao"
	"github.com/magicshop-live/magicshop-backend/catalog/streamdao"
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/tj/assert"
)

type fakeSellers struct {
	records map[string]*sellerdao.Record
	err     error
}

func (f *fakeSellers) Get(_ context.Context, sellerUserID string) (*sellerdao.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[sellerUserID], nil
}

type fakeStreams struct {
	bySeller  map[string]*streamdao.Record
	byChannel map[string]*streamdao.Record
	calls     int
}

func (f *fakeStreams) GetBySeller(_ context.Context, sellerID string) (*streamdao.Record, error) {
	f.calls++
	return f.bySeller[sellerID], nil
}

func (f *fakeStreams) FindByChannelARN(_ context.Context, channelARN string) (*streamdao.Record, error) {
	f.calls++
	return f.byChannel[channelARN], nil
}

func TestBroadcastInfo(t *testing.T) {
	seller := &sellerdao.Record{SellerUserID: "user-1", ID: "seller-1", Name: "The Vintage Stand"}
	stream := &streamdao.Record{
		SellerID:               "seller-1",
		ChannelARN:             "arn:aws:ivs:ca-central-1:123:channel/abc",
		IngestServer:           "rtmps://ingest.example",
		PlaybackURL:            "https://playback.example/stream.m3u8",
		StreamKey:              "sk_live_secret",
		ChatRoomARN:            "arn:aws:ivschat:ca-central-1:123:room/xyz",
		StripeConnectAccountID: "acct_1",
	}

	streams := &fakeStreams{bySeller: map[string]*streamdao.Record{"seller-1": stream}}
	service := New(&fakeSellers{records: map[string]*sellerdao.Record{"user-1": seller}}, streams, shopcli.Metrics{})

	info, err := service.BroadcastInfo(context.Background(), "user-1")
	assert.Nil(t, err)
	assert.Equal(t, seller, info.Seller)
	assert.Equal(t, &StreamInfo{
		IngestServer: stream.IngestServer,
		PlaybackURL:  stream.PlaybackURL,
		StreamKey:    stream.StreamKey,
		ChatRoomARN:  stream.ChatRoomARN,
	}, info.Stream)
}

func TestBroadcastInfoUnknownSellerShortCircuits(t *testing.T) {
	streams := &fakeStreams{}
	service := New(&fakeSellers{}, streams, shopcli.Metrics{})

	_, err := service.BroadcastInfo(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrSellerNotFound))
	assert.Equal(t, 0, streams.calls) // no stream lookup on miss
}

func TestBroadcastInfoSellerWithoutStream(t *testing.T) {
	seller := &sellerdao.Record{SellerUserID: "user-1", ID: "seller-1"}
	service := New(
		&fakeSellers{records: map[string]*sellerdao.Record{"user-1": seller}},
		&fakeStreams{},
		shopcli.Metrics{},
	)

	info, err := service.BroadcastInfo(context.Background(), "user-1")
	assert.Nil(t, err)
	assert.Equal(t, seller, info.Seller)
	assert.Nil(t, info.Stream)
}

type fakeCloudwatch struct {
	cloudwatchiface.CloudWatchAPI
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudwatch) PutMetricDataWithContext(_ aws.Context, input *cloudwatch.PutMetricDataInput, _ ...request.Option) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, input)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestBroadcastInfoPublishesTiming(t *testing.T) {
	seller := &sellerdao.Record{SellerUserID: "user-1", ID: "seller-1"}
	cw := &fakeCloudwatch{}
	service := New(
		&fakeSellers{records: map[string]*sellerdao.Record{"user-1": seller}},
		&fakeStreams{},
		shopcli.NewMetrics(shopcli.Service{Name: "shop-api", Version: "test"}, cw),
	)

	_, err := service.BroadcastInfo(context.Background(), "user-1")
	assert.Nil(t, err)

	assert.Len(t, cw.inputs, 1)
	datum := cw.inputs[0].MetricData[0]
	assert.Equal(t, string(shopcli.ResponseTimeMetric), aws.StringValue(datum.MetricName))

	var operation string
	for _, dimension := range datum.Dimensions {
		if aws.StringValue(dimension.Name) == string(shopcli.OperationNameDimension) {
			operation = aws.StringValue(dimension.Value)
		}
	}
	assert.Equal(t, "BroadcastInfo", operation)
}

func TestStripeAccountID(t *testing.T) {
	arn := "arn:aws:ivs:ca-central-1:123:channel/abc"
	streams := &fakeStreams{byChannel: map[string]*streamdao.Record{
		arn: {SellerID: "seller-1", ChannelARN: arn, StripeConnectAccountID: "acct_1"},
	}}
	service := New(&fakeSellers{}, streams, shopcli.Metrics{})

	accountID, err := service.StripeAccountID(context.Background(), arn)
	assert.Nil(t, err)
	assert.NotNil(t, accountID)
	assert.Equal(t, "acct_1", *accountID)

	// unmatched channels are null, not errors
	accountID, err = service.StripeAccountID(context.Background(), "arn:aws:ivs:ca-central-1:123:channel/other")
	assert.Nil(t, err)
	assert.Nil(t, accountID)
}

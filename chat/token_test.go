package chat

import (
	"context"
	"testing"
	"time"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/aws/aws-sdk-go/service/ivschat"
	"github.com/aws/aws-sdk-go/service/ivschat/ivschatiface"
	"github.com/tj/assert"
)

type fakeIvschat struct {
	ivschatiface.IvschatAPI
	input *ivschat.CreateChatTokenInput
}

func (f *fakeIvschat) CreateChatTokenWithContext(_ aws.Context, input *ivschat.CreateChatTokenInput, _ ...request.Option) (*ivschat.CreateChatTokenOutput, error) {
	f.input = input
	expires := time.Now().Add(time.Hour)
	return &ivschat.CreateChatTokenOutput{
		Token:                 aws.String("chat-token"),
		TokenExpirationTime:   &expires,
		SessionExpirationTime: &expires,
	}, nil
}

func TestCreateToken(t *testing.T) {
	fake := &fakeIvschat{}
	service := New(fake, shopcli.Metrics{})

	token, err := service.CreateToken(context.Background(), TokenInput{
		RoomARN:             "arn:aws:ivschat:ca-central-1:123:room/xyz",
		UserID:              "user-1",
		CapabilitiesProfile: CapabilityProfileUser,
	})
	assert.Nil(t, err)
	assert.Equal(t, "chat-token", token.Token)
	assert.NotNil(t, token.TokenExpirationTime)

	assert.Equal(t, []string{ivschat.ChatTokenCapabilitySendMessage}, aws.StringValueSlice(fake.input.Capabilities))
	assert.EqualValues(t, 180, aws.Int64Value(fake.input.SessionDurationInMinutes))
}

func TestCreateTokenViewerHasNoCapabilities(t *testing.T) {
	fake := &fakeIvschat{}
	service := New(fake, shopcli.Metrics{})

	_, err := service.CreateToken(context.Background(), TokenInput{
		RoomARN:             "arn:aws:ivschat:ca-central-1:123:room/xyz",
		UserID:              "user-1",
		CapabilitiesProfile: "viewer",
	})
	assert.Nil(t, err)
	assert.Len(t, fake.input.Capabilities, 0)
}

type fakeCloudwatch struct {
	cloudwatchiface.CloudWatchAPI
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudwatch) PutMetricDataWithContext(_ aws.Context, input *cloudwatch.PutMetricDataInput, _ ...request.Option) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, input)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestCreateTokenPublishesEvent(t *testing.T) {
	cw := &fakeCloudwatch{}
	service := New(&fakeIvschat{}, shopcli.NewMetrics(shopcli.Service{Name: "shop-api"}, cw))

	_, err := service.CreateToken(context.Background(), TokenInput{
		RoomARN: "arn:aws:ivschat:ca-central-1:123:room/xyz",
		UserID:  "user-1",
	})
	assert.Nil(t, err)

	assert.Len(t, cw.inputs, 1)
	datum := cw.inputs[0].MetricData[0]
	assert.Equal(t, string(shopcli.ChatTokenIssuedMetric), aws.StringValue(datum.MetricName))
	assert.Equal(t, float64(1), aws.Float64Value(datum.Value))
}

func TestCreateTokenValidation(t *testing.T) {
	service := New(&fakeIvschat{}, shopcli.Metrics{})

	_, err := service.CreateToken(context.Background(), TokenInput{UserID: "user-1"})
	assert.NotNil(t, err)

	_, err = service.CreateToken(context.Background(), TokenInput{RoomARN: "arn:room"})
	assert.NotNil(t, err)
}

package payments

import (
	"context"
	"testing"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/tj/assert"
)

func TestApplicationFee(t *testing.T) {
	assert.EqualValues(t, 80, ApplicationFee(1000))
	assert.EqualValues(t, 0, ApplicationFee(0))
	assert.EqualValues(t, 0, ApplicationFee(12)) // floor(0.96)
	assert.EqualValues(t, 1, ApplicationFee(13)) // floor(1.04)
	assert.EqualValues(t, 7, ApplicationFee(99))
}

func TestApplicationFeeNeverExceedsAmount(t *testing.T) {
	for amount := int64(0); amount < 10_000; amount++ {
		fee := ApplicationFee(amount)
		assert.True(t, fee >= 0)
		assert.True(t, fee <= amount)
	}
}

type fakeCloudwatch struct {
	cloudwatchiface.CloudWatchAPI
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudwatch) PutMetricDataWithContext(_ aws.Context, input *cloudwatch.PutMetricDataInput, _ ...request.Option) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, input)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

// Timing is published even when the request never reaches Stripe.
func TestPaymentSheetPublishesTiming(t *testing.T) {
	cw := &fakeCloudwatch{}
	service := &Service{metrics: shopcli.NewMetrics(shopcli.Service{Name: "shop-api"}, cw)}

	_, err := service.PaymentSheet(context.Background(), PaymentSheetInput{})
	assert.True(t, err == ErrMissingCustomer)

	assert.Len(t, cw.inputs, 1)
	datum := cw.inputs[0].MetricData[0]
	assert.Equal(t, string(shopcli.ResponseTimeMetric), aws.StringValue(datum.MetricName))

	var operation string
	for _, dimension := range datum.Dimensions {
		if aws.StringValue(dimension.Name) == string(shopcli.OperationNameDimension) {
			operation = aws.StringValue(dimension.Value)
		}
	}
	assert.Equal(t, "PaymentSheet", operation)
}

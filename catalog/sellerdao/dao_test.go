package sellerdao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/savaki/ddb"
	"github.com/tj/assert"
)

func withTable(t *testing.T, callback func(ctx context.Context, dao *DAO)) {
	var (
		s = session.Must(session.NewSession(aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials("blah", "blah", "")).
			WithEndpoint("http://localhost:8000").
			WithRegion("us-west-2")))
		api       = dynamodb.New(s)
		client    = ddb.New(api)
		tableName = fmt.Sprintf("table-%v", time.Now().UnixNano())
		table     = client.MustTable(tableName, Record{})
		dao       = New(api, tableName)
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := table.CreateTableIfNotExists(ctx)
	assert.Nil(t, err)
	defer table.DeleteTableIfExists(ctx)

	callback(ctx, dao)
}

func TestDAO(t *testing.T) {
	withTable(t, func(ctx context.Context, dao *DAO) {
		record := Record{
			SellerUserID: "user-1",
			ID:           "seller-1",
			Name:         "The Vintage Stand",
		}

		err := dao.Put(ctx, record)
		assert.Nil(t, err)

		got, err := dao.Get(ctx, "user-1")
		assert.Nil(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, record, *got)

		// unknown users are not sellers, not errors
		got, err = dao.Get(ctx, "user-2")
		assert.Nil(t, err)
		assert.Nil(t, got)
	})
}

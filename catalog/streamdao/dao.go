package streamdao

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/savaki/ddb"
)

// DAO provides access to the stream-info table.
type DAO struct {
	table *ddb.Table
}

// New creates a new stream-info DAO.
func New(api dynamodbiface.DynamoDBAPI, tableName string) *DAO {
	return &DAO{
		table: ddb.New(api).MustTable(tableName, Record{}),
	}
}

// GetBySeller retrieves the stream configuration for a seller. Returns nil if
// the seller has no stream provisioned.
func (d *DAO) GetBySeller(ctx context.Context, sellerID string) (*Record, error) {
	var record Record
	if err := d.table.Get(sellerID).ScanWithContext(ctx, &record); err != nil {
		if ddb.IsItemNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stream info for seller %v: %w", sellerID, err)
	}
	return &record, nil
}

// FindByChannelARN resolves a channel ARN to its stream row via the
// ChannelArnIndex GSI. Returns nil when no row matches.
func (d *DAO) FindByChannelARN(ctx context.Context, channelARN string) (*Record, error) {
	var records []Record
	err := d.table.Query("#ChannelARN = ?", channelARN).
		IndexName("ChannelArnIndex").
		FindAllWithContext(ctx, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to query stream info by channel %v: %w", channelARN, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Put stores or overwrites a stream row.
func (d *DAO) Put(ctx context.Context, record Record) error {
	return d.table.Put(record).RunWithContext(ctx)
}

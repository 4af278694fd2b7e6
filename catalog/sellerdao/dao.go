package sellerdao

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/savaki/ddb"
)

// DAO provides access to the sellers table.
type DAO struct {
	table *ddb.Table
}

// New creates a new sellers DAO.
func New(api dynamodbiface.DynamoDBAPI, tableName string) *DAO {
	return &DAO{
		table: ddb.New(api).MustTable(tableName, Record{}),
	}
}

// Get retrieves the seller owned by the given app user. Returns nil if the
// user is not a seller.
func (d *DAO) Get(ctx context.Context, sellerUserID string) (*Record, error) {
	var record Record
	if err := d.table.Get(sellerUserID).ScanWithContext(ctx, &record); err != nil {
		if ddb.IsItemNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get seller for user %v: %w", sellerUserID, err)
	}
	return &record, nil
}

// Put stores or overwrites a seller row.
func (d *DAO) Put(ctx context.Context, record Record) error {
	return d.table.Put(record).RunWithContext(ctx)
}

package livecachedao

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/savaki/ddb"
)

// DAO provides access to the livestream cache table.
type DAO struct {
	table *ddb.Table
}

// New creates a new livestream cache DAO.
func New(api dynamodbiface.DynamoDBAPI, tableName string) *DAO {
	return &DAO{
		table: ddb.New(api).MustTable(tableName, Record{}),
	}
}

// Put stores or overwrites a cache row.
func (d *DAO) Put(ctx context.Context, record Record) error {
	return d.table.Put(record).RunWithContext(ctx)
}

// Get retrieves a cache row. Returns nil if not found.
func (d *DAO) Get(ctx context.Context, id string) (*Record, error) {
	var record Record
	if err := d.table.Get(id).ScanWithContext(ctx, &record); err != nil {
		if ddb.IsItemNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get livestream cache %v: %w", id, err)
	}
	return &record, nil
}

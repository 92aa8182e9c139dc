package spannerrepo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
	"github.com/light-bringer/procat-analytics/internal/pkg/committer"
)

// maxInsertRaces bounds how often Increment retries after losing a first-view
// insert to a concurrent viewer.
const maxInsertRaces = 3

// ViewRepo implements ViewRepository for Spanner.
type ViewRepo struct {
	committer *committer.Committer
	model     *m_view.Model
}

var _ contracts.ViewRepository = (*ViewRepo)(nil)

// NewViewRepo creates a new ViewRepo.
func NewViewRepo(c *committer.Committer) *ViewRepo {
	return &ViewRepo{
		committer: c,
		model:     m_view.NewModel(),
	}
}

// Increment adds one to the product's counter, creating it at 1 on first view.
// Both branches run in one read-write transaction. Serializable isolation makes
// concurrent increments abort and retry instead of losing updates; two first
// views racing on the insert surface as AlreadyExists and the loser retries as
// an update.
func (r *ViewRepo) Increment(ctx context.Context, productID int64) error {
	var err error
	for attempt := 0; attempt < maxInsertRaces; attempt++ {
		err = r.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
			updated, err := txn.Update(ctx, r.model.IncrementStmt(productID))
			if err != nil {
				return fmt.Errorf("failed to increment view count: %w", err)
			}
			if updated > 0 {
				return nil
			}
			return txn.BufferWrite([]*spanner.Mutation{
				r.model.InsertMut(&m_view.Data{ProductID: productID, ViewCount: 1}),
			})
		})
		if spanner.ErrCode(err) != codes.AlreadyExists {
			break
		}
	}
	return translateError(err)
}

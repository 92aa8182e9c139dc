package mysqlrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
)

// ViewRepo implements ViewRepository for MySQL.
type ViewRepo struct {
	db *gorm.DB
}

var _ contracts.ViewRepository = (*ViewRepo)(nil)

// NewViewRepo creates a new ViewRepo.
func NewViewRepo(db *gorm.DB) *ViewRepo {
	return &ViewRepo{db: db}
}

// Increment issues INSERT ... ON DUPLICATE KEY UPDATE view_count = view_count + 1.
// The server applies it atomically, so concurrent views never lose a count.
func (r *ViewRepo) Increment(ctx context.Context, productID int64) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoUpdates: clause.Assignments(map[string]interface{}{
				m_view.ViewCount: gorm.Expr(m_view.ViewCount+" + ?", 1),
			}),
		}).
		Create(&ViewModel{ProductID: productID, ViewCount: 1}).Error
	return translateError(err)
}

package repositories

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork bundles the three entity repositories over one shared
// connection. Reads run auto-committed; multi-step writes go through
// WithinTransaction.
type UnitOfWork struct {
	db      *gorm.DB
	Users   *UserRepository
	Posts   *PostRepository
	Follows *FollowRepository
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db:      db,
		Users:   NewUserRepository(db),
		Posts:   NewPostRepository(db),
		Follows: NewFollowRepository(db),
	}
}

// WithinTransaction runs fn against a transaction-scoped UnitOfWork.
// The transaction commits when fn returns nil and rolls back on error
// or panic, so no exit path leaves it open.
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(tx *UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnitOfWork(tx))
	})
}

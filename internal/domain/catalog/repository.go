package catalog

import "context"

// Repository handles catalog item persistence.
type Repository interface {
	Create(ctx context.Context, item *Subscribable) error
	GetByID(ctx context.Context, id uint) (*Subscribable, error)
	GetBySID(ctx context.Context, sid string) (*Subscribable, error)
	// GetByIDs retrieves several items in a single query; missing IDs are
	// simply absent from the result map.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Subscribable, error)
	Update(ctx context.Context, item *Subscribable) error
	List(ctx context.Context, page, pageSize int) ([]*Subscribable, int64, error)
}

// Package ordering turns subscription line items into priced order lines.
package ordering

import (
	"context"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/infrastructure/cache"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

// LineBuilder implements lineitem.OrderLineBuilder. It prices each line
// item from the catalog, consulting the Redis snapshot first and falling
// back to the repository. Items that are missing or not currently
// purchasable produce no line; that is not an error.
type LineBuilder struct {
	subscribableRepo catalog.Repository
	catalogCache     cache.CatalogCache
	logger           logger.Interface
}

func NewLineBuilder(subscribableRepo catalog.Repository, catalogCache cache.CatalogCache, logger logger.Interface) *LineBuilder {
	return &LineBuilder{
		subscribableRepo: subscribableRepo,
		catalogCache:     catalogCache,
		logger:           logger,
	}
}

func (b *LineBuilder) Build(ctx context.Context, items []*lineitem.SubscriptionLineItem) ([]lineitem.BuiltLine, error) {
	lines := make([]lineitem.BuiltLine, 0, len(items))

	for _, li := range items {
		snapshot, err := b.lookup(ctx, li.SubscribableID())
		if err != nil {
			return nil, err
		}
		if snapshot == nil {
			b.logger.Warnw("subscribable missing, skipping line", "subscribable_id", li.SubscribableID())
			continue
		}
		if !snapshot.Purchasable {
			b.logger.Debugw("subscribable not purchasable, skipping line", "subscribable_id", li.SubscribableID())
			continue
		}

		lines = append(lines, lineitem.BuiltLine{
			SubscribableID: snapshot.ID,
			Quantity:       li.Quantity(),
			UnitPriceCents: snapshot.PriceCents,
			Currency:       snapshot.Currency,
			Description:    snapshot.Name,
		})
	}

	return lines, nil
}

// lookup fetches the pricing snapshot, cache first. Cache errors degrade
// to a database read; a nil result means the item does not exist.
func (b *LineBuilder) lookup(ctx context.Context, subscribableID uint) (*cache.CachedSubscribable, error) {
	if b.catalogCache != nil {
		cached, err := b.catalogCache.Get(ctx, subscribableID)
		if err != nil {
			b.logger.Warnw("catalog cache read failed, falling back to database", "subscribable_id", subscribableID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	item, err := b.subscribableRepo.GetByID(ctx, subscribableID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribable %d: %w", subscribableID, err)
	}
	if item == nil {
		return nil, nil
	}

	snapshot := &cache.CachedSubscribable{
		ID:          item.ID(),
		Name:        item.Name(),
		PriceCents:  item.PriceCents(),
		Currency:    item.Currency(),
		Purchasable: item.IsPurchasable(),
	}

	if b.catalogCache != nil {
		if err := b.catalogCache.Set(ctx, snapshot); err != nil {
			b.logger.Warnw("catalog cache write failed", "subscribable_id", subscribableID, "error", err)
		}
	}

	return snapshot, nil
}

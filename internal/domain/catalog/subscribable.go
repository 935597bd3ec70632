package catalog

import (
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/shared/id"
)

// Subscribable is a catalog item eligible for recurring purchase.
type Subscribable struct {
	id          uint
	sid         string
	name        string
	priceCents  int64
	currency    string
	purchasable bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSubscribable creates a new catalog item.
func NewSubscribable(name string, priceCents int64, currency string) (*Subscribable, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixSubscribable, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Subscribable{
		sid:         sid,
		name:        name,
		priceCents:  priceCents,
		currency:    currency,
		purchasable: true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSubscribable reconstructs a catalog item from persistence.
func ReconstructSubscribable(
	itemID uint,
	sid, name string,
	priceCents int64,
	currency string,
	purchasable bool,
	createdAt, updatedAt time.Time,
) (*Subscribable, error) {
	if itemID == 0 {
		return nil, fmt.Errorf("subscribable ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("subscribable SID is required")
	}

	return &Subscribable{
		id:          itemID,
		sid:         sid,
		name:        name,
		priceCents:  priceCents,
		currency:    currency,
		purchasable: purchasable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Subscribable) ID() uint             { return s.id }
func (s *Subscribable) SID() string          { return s.sid }
func (s *Subscribable) Name() string         { return s.name }
func (s *Subscribable) PriceCents() int64    { return s.priceCents }
func (s *Subscribable) Currency() string     { return s.currency }
func (s *Subscribable) IsPurchasable() bool  { return s.purchasable }
func (s *Subscribable) CreatedAt() time.Time { return s.createdAt }
func (s *Subscribable) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the item ID (only for persistence layer use).
func (s *Subscribable) SetID(itemID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscribable ID is already set")
	}
	if itemID == 0 {
		return fmt.Errorf("subscribable ID cannot be zero")
	}
	s.id = itemID
	return nil
}

// MarkUnpurchasable takes the item off recurring sale.
func (s *Subscribable) MarkUnpurchasable() {
	if !s.purchasable {
		return
	}
	s.purchasable = false
	s.updatedAt = time.Now().UTC()
}

// MarkPurchasable returns the item to recurring sale.
func (s *Subscribable) MarkPurchasable() {
	if s.purchasable {
		return
	}
	s.purchasable = true
	s.updatedAt = time.Now().UTC()
}

// UpdatePrice changes the catalog price.
func (s *Subscribable) UpdatePrice(priceCents int64) error {
	if priceCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	s.priceCents = priceCents
	s.updatedAt = time.Now().UTC()
	return nil
}

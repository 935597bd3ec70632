package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type UpdateLineItemCommand struct {
	LineItemID     uint   // Internal line item ID (used if LineItemSID is empty)
	LineItemSID    string // Stripe-style line item SID (takes precedence over LineItemID)
	Quantity       *int
	IntervalLength *int
	IntervalUnits  *string
	Installments   *int
	EndDate        *time.Time
	ClearEndDate   bool
}

type UpdateLineItemUseCase struct {
	lineItemRepo lineitem.Repository
	eventRepo    subscription.EventRepository
	tx           Transactor
	logger       logger.Interface
}

func NewUpdateLineItemUseCase(
	lineItemRepo lineitem.Repository,
	eventRepo subscription.EventRepository,
	tx Transactor,
	logger logger.Interface,
) *UpdateLineItemUseCase {
	return &UpdateLineItemUseCase{
		lineItemRepo: lineItemRepo,
		eventRepo:    eventRepo,
		tx:           tx,
		logger:       logger,
	}
}

func (uc *UpdateLineItemUseCase) Execute(ctx context.Context, cmd UpdateLineItemCommand) (*lineitem.SubscriptionLineItem, error) {
	li, err := resolveLineItem(ctx, uc.lineItemRepo, cmd.LineItemID, cmd.LineItemSID)
	if err != nil {
		return nil, err
	}

	if cmd.Quantity != nil {
		if err := li.UpdateQuantity(*cmd.Quantity); err != nil {
			return nil, err
		}
	}

	if cmd.IntervalLength != nil || cmd.IntervalUnits != nil {
		interval := li.Interval()
		if cmd.IntervalLength != nil {
			interval.Length = *cmd.IntervalLength
		}
		if cmd.IntervalUnits != nil {
			unit, err := recurrence.ParseUnit(*cmd.IntervalUnits)
			if err != nil {
				return nil, err
			}
			interval.Units = unit
		}
		if err := li.UpdateRecurrence(interval); err != nil {
			return nil, err
		}
	}

	if cmd.Installments != nil {
		if err := li.UpdateInstallments(*cmd.Installments); err != nil {
			return nil, err
		}
	}

	if cmd.ClearEndDate {
		li.SetEndDate(nil)
	} else if cmd.EndDate != nil {
		li.SetEndDate(cmd.EndDate)
	}

	if err := li.Validate(); err != nil {
		return nil, err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lineItemRepo.Update(txCtx, li); err != nil {
			return fmt.Errorf("failed to update line item: %w", err)
		}
		return recordLineItemEvent(txCtx, uc.eventRepo, li, lineitem.EventLineItemUpdated)
	})
	if err != nil {
		uc.logger.Errorw("failed to update subscription line item", "error", err, "line_item_sid", li.SID())
		return nil, err
	}

	uc.logger.Infow("subscription line item updated", "line_item_sid", li.SID())
	return li, nil
}

// resolveLineItem fetches a line item by SID when given, by internal ID
// otherwise.
func resolveLineItem(ctx context.Context, repo lineitem.Repository, id uint, sid string) (*lineitem.SubscriptionLineItem, error) {
	var li *lineitem.SubscriptionLineItem
	var err error

	if sid != "" {
		li, err = repo.GetBySID(ctx, sid)
	} else {
		li, err = repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get line item: %w", err)
	}
	if li == nil {
		return nil, lineitem.ErrLineItemNotFound
	}
	return li, nil
}

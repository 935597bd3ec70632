package usecases

import (
	"context"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type DeleteLineItemCommand struct {
	LineItemID  uint   // Internal line item ID (used if LineItemSID is empty)
	LineItemSID string // Stripe-style line item SID (takes precedence over LineItemID)
}

type DeleteLineItemUseCase struct {
	lineItemRepo lineitem.Repository
	eventRepo    subscription.EventRepository
	tx           Transactor
	logger       logger.Interface
}

func NewDeleteLineItemUseCase(
	lineItemRepo lineitem.Repository,
	eventRepo subscription.EventRepository,
	tx Transactor,
	logger logger.Interface,
) *DeleteLineItemUseCase {
	return &DeleteLineItemUseCase{
		lineItemRepo: lineItemRepo,
		eventRepo:    eventRepo,
		tx:           tx,
		logger:       logger,
	}
}

func (uc *DeleteLineItemUseCase) Execute(ctx context.Context, cmd DeleteLineItemCommand) error {
	li, err := resolveLineItem(ctx, uc.lineItemRepo, cmd.LineItemID, cmd.LineItemSID)
	if err != nil {
		return err
	}

	// The destroyed event snapshots the record as it was before deletion.
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lineItemRepo.Delete(txCtx, li.ID()); err != nil {
			return fmt.Errorf("failed to delete line item: %w", err)
		}
		return recordLineItemEvent(txCtx, uc.eventRepo, li, lineitem.EventLineItemDestroyed)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete subscription line item", "error", err, "line_item_sid", li.SID())
		return err
	}

	uc.logger.Infow("subscription line item deleted", "line_item_sid", li.SID())
	return nil
}

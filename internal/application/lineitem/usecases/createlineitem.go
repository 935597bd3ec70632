package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/application/lineitem/dto"
	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type CreateLineItemCommand struct {
	SubscribableID   uint   // Internal subscribable ID (used if SubscribableSID is empty)
	SubscribableSID  string // Stripe-style subscribable SID (takes precedence over SubscribableID)
	Quantity         int
	IntervalLength   int
	IntervalUnits    string
	Installments     int
	EndDate          *time.Time
	SubscriptionID   *uint  // Internal subscription ID (used if SubscriptionSID is empty)
	SubscriptionSID  string // Stripe-style subscription SID (takes precedence over SubscriptionID)
	SourceLineItemID *uint
}

type CreateLineItemUseCase struct {
	lineItemRepo     lineitem.Repository
	subscribableRepo catalog.Repository
	subscriptionRepo subscription.Repository
	eventRepo        subscription.EventRepository
	tx               Transactor
	logger           logger.Interface
}

func NewCreateLineItemUseCase(
	lineItemRepo lineitem.Repository,
	subscribableRepo catalog.Repository,
	subscriptionRepo subscription.Repository,
	eventRepo subscription.EventRepository,
	tx Transactor,
	logger logger.Interface,
) *CreateLineItemUseCase {
	return &CreateLineItemUseCase{
		lineItemRepo:     lineItemRepo,
		subscribableRepo: subscribableRepo,
		subscriptionRepo: subscriptionRepo,
		eventRepo:        eventRepo,
		tx:               tx,
		logger:           logger,
	}
}

func (uc *CreateLineItemUseCase) Execute(ctx context.Context, cmd CreateLineItemCommand) (*lineitem.SubscriptionLineItem, error) {
	// Resolve subscribable: prefer SID over internal ID
	subscribableID := cmd.SubscribableID
	if cmd.SubscribableSID != "" {
		item, err := uc.subscribableRepo.GetBySID(ctx, cmd.SubscribableSID)
		if err != nil {
			uc.logger.Errorw("failed to get subscribable by SID", "error", err, "subscribable_sid", cmd.SubscribableSID)
			return nil, fmt.Errorf("failed to get subscribable: %w", err)
		}
		if item == nil {
			return nil, catalog.ErrSubscribableNotFound
		}
		subscribableID = item.ID()
	} else if subscribableID != 0 {
		item, err := uc.subscribableRepo.GetByID(ctx, subscribableID)
		if err != nil {
			uc.logger.Errorw("failed to get subscribable", "error", err, "subscribable_id", subscribableID)
			return nil, fmt.Errorf("failed to get subscribable: %w", err)
		}
		if item == nil {
			return nil, catalog.ErrSubscribableNotFound
		}
	}

	// Resolve owning subscription if any
	var sub *subscription.Subscription
	var err error
	if cmd.SubscriptionSID != "" {
		sub, err = uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
	} else if cmd.SubscriptionID != nil && *cmd.SubscriptionID != 0 {
		sub, err = uc.subscriptionRepo.GetByID(ctx, *cmd.SubscriptionID)
	}
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if (cmd.SubscriptionSID != "" || (cmd.SubscriptionID != nil && *cmd.SubscriptionID != 0)) && sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	var subscriptionID *uint
	if sub != nil {
		sid := sub.ID()
		subscriptionID = &sid
	}

	interval := recurrence.Interval{Length: cmd.IntervalLength, Units: recurrence.Unit(cmd.IntervalUnits)}

	li, err := lineitem.NewSubscriptionLineItem(
		subscribableID,
		cmd.Quantity,
		interval,
		cmd.Installments,
		subscriptionID,
		cmd.SourceLineItemID,
	)
	if err != nil {
		return nil, err
	}
	if cmd.EndDate != nil {
		li.SetEndDate(cmd.EndDate)
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lineItemRepo.Create(txCtx, li); err != nil {
			return fmt.Errorf("failed to create line item: %w", err)
		}
		return recordLineItemEvent(txCtx, uc.eventRepo, li, lineitem.EventLineItemCreated)
	})
	if err != nil {
		uc.logger.Errorw("failed to create subscription line item", "error", err, "subscribable_id", subscribableID)
		return nil, err
	}

	uc.logger.Infow("subscription line item created", "line_item_sid", li.SID(), "subscribable_id", subscribableID)
	return li, nil
}

// recordLineItemEvent writes a lifecycle audit event on the owning
// subscription. Line items without a subscription leave no trail. The
// caller is expected to run this inside the same transaction as the row
// write so a failed event insert aborts the whole operation.
func recordLineItemEvent(ctx context.Context, eventRepo subscription.EventRepository, li *lineitem.SubscriptionLineItem, eventType string) error {
	if !li.HasSubscription() {
		return nil
	}

	payload, err := dto.ToEventPayload(li)
	if err != nil {
		return fmt.Errorf("%w: %w", subscription.ErrEventWriteFailed, err)
	}

	event, err := subscription.NewEvent(*li.SubscriptionID(), eventType, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", subscription.ErrEventWriteFailed, err)
	}

	if err := eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("%w: %w", subscription.ErrEventWriteFailed, err)
	}
	return nil
}

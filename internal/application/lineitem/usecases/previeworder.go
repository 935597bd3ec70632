package usecases

import (
	"context"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/order"
	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/domain/user"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type PreviewLineItemCommand struct {
	LineItemID  uint   // Internal line item ID (used if LineItemSID is empty)
	LineItemSID string // Stripe-style line item SID (takes precedence over LineItemID)
}

// PreviewLineItemUseCase builds the transient order a line item would
// generate at its next occurrence. Nothing it produces is persisted, and
// the source line item, subscription, order and user are read but never
// modified.
type PreviewLineItemUseCase struct {
	lineItemRepo     lineitem.Repository
	subscriptionRepo subscription.Repository
	orderRepo        order.Repository
	userRepo         user.Repository
	builder          lineitem.OrderLineBuilder
	logger           logger.Interface
}

func NewPreviewLineItemUseCase(
	lineItemRepo lineitem.Repository,
	subscriptionRepo subscription.Repository,
	orderRepo order.Repository,
	userRepo user.Repository,
	builder lineitem.OrderLineBuilder,
	logger logger.Interface,
) *PreviewLineItemUseCase {
	return &PreviewLineItemUseCase{
		lineItemRepo:     lineItemRepo,
		subscriptionRepo: subscriptionRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		builder:          builder,
		logger:           logger,
	}
}

// Execute returns the preview order, or nil when the builder produced no
// lines (for example when the subscribable is currently unpurchasable).
// Line items without an owning subscription preview against an empty order
// shell.
func (uc *PreviewLineItemUseCase) Execute(ctx context.Context, cmd PreviewLineItemCommand) (*lineitem.PreviewOrder, error) {
	li, err := resolveLineItem(ctx, uc.lineItemRepo, cmd.LineItemID, cmd.LineItemSID)
	if err != nil {
		return nil, err
	}

	var sub *subscription.Subscription
	if li.HasSubscription() {
		sub, err = uc.subscriptionRepo.GetByID(ctx, *li.SubscriptionID())
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", *li.SubscriptionID())
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return nil, subscription.ErrSubscriptionNotFound
		}
	}

	lines, err := uc.builder.Build(ctx, []*lineitem.SubscriptionLineItem{li})
	if err != nil {
		uc.logger.Errorw("failed to build preview lines", "error", err, "line_item_sid", li.SID())
		return nil, fmt.Errorf("failed to build preview lines: %w", err)
	}
	if len(lines) == 0 {
		uc.logger.Debugw("nothing to preview", "line_item_sid", li.SID())
		return nil, nil
	}

	userID, shipping, billing, err := uc.deriveOrderShell(ctx, li, sub)
	if err != nil {
		return nil, err
	}

	previewLines := make([]lineitem.PreviewLineItem, 0, len(lines))
	for _, l := range lines {
		previewLines = append(previewLines, lineitem.NewPreviewLineItem(l))
	}

	return lineitem.NewPreviewOrder(userID, shipping, billing, previewLines), nil
}

// deriveOrderShell assembles the transient order around the preview lines:
// a clone of the source order when the line item came from one, an empty
// shell otherwise. An owning subscription always overrides the shell's
// addresses with its explicit ones, falling back to the owner's defaults.
func (uc *PreviewLineItemUseCase) deriveOrderShell(ctx context.Context, li *lineitem.SubscriptionLineItem, sub *subscription.Subscription) (uint, *address.Address, *address.Address, error) {
	var userID uint
	var shipping, billing *address.Address

	if srcID := li.SourceLineItemID(); srcID != nil {
		src, err := uc.orderRepo.GetByLineItemID(ctx, *srcID)
		if err != nil {
			uc.logger.Errorw("failed to get source order", "error", err, "source_line_item_id", *srcID)
			return 0, nil, nil, fmt.Errorf("failed to get source order: %w", err)
		}
		if src != nil {
			shell := src.Clone()
			userID = shell.UserID()
			shipping = shell.ShippingAddress()
			billing = shell.BillingAddress()
		}
	}

	if sub == nil {
		return userID, shipping, billing, nil
	}

	userID = sub.UserID()
	shipping = sub.ShippingAddress()
	billing = sub.BillingAddress()

	if shipping == nil || billing == nil {
		owner, err := uc.userRepo.GetByID(ctx, sub.UserID())
		if err != nil {
			uc.logger.Errorw("failed to get user", "error", err, "user_id", sub.UserID())
			return 0, nil, nil, fmt.Errorf("failed to get user: %w", err)
		}
		if owner != nil {
			if shipping == nil {
				shipping = owner.ShippingAddress()
			}
			if billing == nil {
				billing = owner.BillingAddress()
			}
		}
	}

	return userID, shipping, billing, nil
}

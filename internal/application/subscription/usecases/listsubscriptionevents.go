package usecases

import (
	"context"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/constants"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type ListSubscriptionEventsCommand struct {
	SubscriptionID  uint   // Internal subscription ID (used if SubscriptionSID is empty)
	SubscriptionSID string // Stripe-style subscription SID (takes precedence over SubscriptionID)
	Page            int
	PageSize        int
}

type ListSubscriptionEventsResult struct {
	Events   []*subscription.Event
	Total    int64
	Page     int
	PageSize int
}

// ListSubscriptionEventsUseCase pages through the append-only audit trail
// of one subscription, newest first.
type ListSubscriptionEventsUseCase struct {
	subscriptionRepo subscription.Repository
	eventRepo        subscription.EventRepository
	logger           logger.Interface
}

func NewListSubscriptionEventsUseCase(
	subscriptionRepo subscription.Repository,
	eventRepo subscription.EventRepository,
	logger logger.Interface,
) *ListSubscriptionEventsUseCase {
	return &ListSubscriptionEventsUseCase{
		subscriptionRepo: subscriptionRepo,
		eventRepo:        eventRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionEventsUseCase) Execute(ctx context.Context, cmd ListSubscriptionEventsCommand) (*ListSubscriptionEventsResult, error) {
	subscriptionID := cmd.SubscriptionID
	if cmd.SubscriptionSID != "" {
		sub, err := uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription by SID", "error", err, "subscription_sid", cmd.SubscriptionSID)
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return nil, subscription.ErrSubscriptionNotFound
		}
		subscriptionID = sub.ID()
	}

	page := cmd.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := cmd.PageSize
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	events, total, err := uc.eventRepo.ListBySubscriptionID(ctx, subscriptionID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list subscription events", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list subscription events: %w", err)
	}

	return &ListSubscriptionEventsResult{
		Events:   events,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

package usecases

import (
	"context"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type GetLineItemCommand struct {
	LineItemID  uint   // Internal line item ID (used if LineItemSID is empty)
	LineItemSID string // Stripe-style line item SID (takes precedence over LineItemID)
}

type GetLineItemUseCase struct {
	lineItemRepo lineitem.Repository
	logger       logger.Interface
}

func NewGetLineItemUseCase(lineItemRepo lineitem.Repository, logger logger.Interface) *GetLineItemUseCase {
	return &GetLineItemUseCase{lineItemRepo: lineItemRepo, logger: logger}
}

func (uc *GetLineItemUseCase) Execute(ctx context.Context, cmd GetLineItemCommand) (*lineitem.SubscriptionLineItem, error) {
	return resolveLineItem(ctx, uc.lineItemRepo, cmd.LineItemID, cmd.LineItemSID)
}

package usecases

import (
	"context"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/shared/constants"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type ListLineItemsCommand struct {
	SubscriptionID *uint
	SubscribableID *uint
	Page           int
	PageSize       int
	SortBy         string
	SortDesc       bool
}

type ListLineItemsResult struct {
	LineItems []*lineitem.SubscriptionLineItem
	Total     int64
	Page      int
	PageSize  int
}

type ListLineItemsUseCase struct {
	lineItemRepo lineitem.Repository
	logger       logger.Interface
}

func NewListLineItemsUseCase(lineItemRepo lineitem.Repository, logger logger.Interface) *ListLineItemsUseCase {
	return &ListLineItemsUseCase{lineItemRepo: lineItemRepo, logger: logger}
}

func (uc *ListLineItemsUseCase) Execute(ctx context.Context, cmd ListLineItemsCommand) (*ListLineItemsResult, error) {
	page := cmd.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := cmd.PageSize
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	filter := lineitem.Filter{
		SubscriptionID: cmd.SubscriptionID,
		SubscribableID: cmd.SubscribableID,
		Page:           page,
		PageSize:       pageSize,
		SortBy:         cmd.SortBy,
		SortDesc:       cmd.SortDesc,
	}

	items, total, err := uc.lineItemRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscription line items", "error", err)
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}

	return &ListLineItemsResult{
		LineItems: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

package handlers

import (
	goerrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loopcart-io/loopcart/internal/application/lineitem/dto"
	"github.com/loopcart-io/loopcart/internal/application/lineitem/usecases"
	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/errors"
	"github.com/loopcart-io/loopcart/internal/shared/id"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
	"github.com/loopcart-io/loopcart/internal/shared/utils"
)

type LineItemHandler struct {
	createLineItemUC  *usecases.CreateLineItemUseCase
	updateLineItemUC  *usecases.UpdateLineItemUseCase
	getLineItemUC     *usecases.GetLineItemUseCase
	listLineItemsUC   *usecases.ListLineItemsUseCase
	deleteLineItemUC  *usecases.DeleteLineItemUseCase
	previewLineItemUC *usecases.PreviewLineItemUseCase
	logger            logger.Interface
}

func NewLineItemHandler(
	createLineItemUC *usecases.CreateLineItemUseCase,
	updateLineItemUC *usecases.UpdateLineItemUseCase,
	getLineItemUC *usecases.GetLineItemUseCase,
	listLineItemsUC *usecases.ListLineItemsUseCase,
	deleteLineItemUC *usecases.DeleteLineItemUseCase,
	previewLineItemUC *usecases.PreviewLineItemUseCase,
) *LineItemHandler {
	return &LineItemHandler{
		createLineItemUC:  createLineItemUC,
		updateLineItemUC:  updateLineItemUC,
		getLineItemUC:     getLineItemUC,
		listLineItemsUC:   listLineItemsUC,
		deleteLineItemUC:  deleteLineItemUC,
		previewLineItemUC: previewLineItemUC,
		logger:            logger.NewLogger(),
	}
}

type CreateLineItemRequest struct {
	SubscribableID   uint       `json:"subscribable_id"`
	SubscribableSID  string     `json:"subscribable_sid"`
	Quantity         int        `json:"quantity" binding:"required"`
	IntervalLength   int        `json:"interval_length"`
	IntervalUnits    string     `json:"interval_units" binding:"omitempty,interval_unit"`
	Installments     int        `json:"installments"`
	EndDate          *time.Time `json:"end_date"`
	SubscriptionID   *uint      `json:"subscription_id"`
	SubscriptionSID  string     `json:"subscription_sid"`
	SourceLineItemID *uint      `json:"source_line_item_id"`
}

type UpdateLineItemRequest struct {
	Quantity       *int       `json:"quantity"`
	IntervalLength *int       `json:"interval_length"`
	IntervalUnits  *string    `json:"interval_units" binding:"omitempty,interval_unit"`
	Installments   *int       `json:"installments"`
	EndDate        *time.Time `json:"end_date"`
	ClearEndDate   bool       `json:"clear_end_date"`
}

func (h *LineItemHandler) CreateLineItem(c *gin.Context) {
	var req CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create line item", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateLineItemCommand{
		SubscribableID:   req.SubscribableID,
		SubscribableSID:  req.SubscribableSID,
		Quantity:         req.Quantity,
		IntervalLength:   req.IntervalLength,
		IntervalUnits:    req.IntervalUnits,
		Installments:     req.Installments,
		EndDate:          req.EndDate,
		SubscriptionID:   req.SubscriptionID,
		SubscriptionSID:  req.SubscriptionSID,
		SourceLineItemID: req.SourceLineItemID,
	}

	li, err := h.createLineItemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}

	utils.CreatedResponse(c, dto.ToLineItemDTO(li), "Line item created successfully")
}

func (h *LineItemHandler) GetLineItem(c *gin.Context) {
	itemID, itemSID, err := parseLineItemRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	li, err := h.getLineItemUC.Execute(c.Request.Context(), usecases.GetLineItemCommand{
		LineItemID:  itemID,
		LineItemSID: itemSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}

	// The single-resource representation carries the computed
	// dummy_line_item: the priced line this item would produce at its next
	// occurrence. Computed on the fly, never stored; absent when the item
	// is not currently buildable. List responses omit it.
	preview, err := h.previewLineItemUC.Execute(c.Request.Context(), usecases.PreviewLineItemCommand{
		LineItemID:  li.ID(),
		LineItemSID: li.SID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}
	var previewLine *dto.PreviewLineItemDTO
	if preview != nil && len(preview.Lines()) > 0 {
		previewLine = dto.ToPreviewLineItemDTO(preview.Lines()[0])
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToLineItemDTOWithPreview(li, previewLine))
}

func (h *LineItemHandler) ListLineItems(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListLineItemsCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_desc") == "true",
	}

	if v := c.Query("subscription_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid subscription_id"))
			return
		}
		subID := uint(parsed)
		cmd.SubscriptionID = &subID
	}

	if v := c.Query("subscribable_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid subscribable_id"))
			return
		}
		itemID := uint(parsed)
		cmd.SubscribableID = &itemID
	}

	result, err := h.listLineItemsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}

	utils.ListSuccessResponse(c, dto.ToLineItemDTOList(result.LineItems), result.Total, result.Page, result.PageSize)
}

func (h *LineItemHandler) UpdateLineItem(c *gin.Context) {
	itemID, itemSID, err := parseLineItemRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update line item", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateLineItemCommand{
		LineItemID:     itemID,
		LineItemSID:    itemSID,
		Quantity:       req.Quantity,
		IntervalLength: req.IntervalLength,
		IntervalUnits:  req.IntervalUnits,
		Installments:   req.Installments,
		EndDate:        req.EndDate,
		ClearEndDate:   req.ClearEndDate,
	}

	li, err := h.updateLineItemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Line item updated successfully", dto.ToLineItemDTO(li))
}

func (h *LineItemHandler) DeleteLineItem(c *gin.Context) {
	itemID, itemSID, err := parseLineItemRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteLineItemUC.Execute(c.Request.Context(), usecases.DeleteLineItemCommand{
		LineItemID:  itemID,
		LineItemSID: itemSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}

	utils.NoContentResponse(c)
}

// PreviewLineItem returns the transient order the line item would generate
// at its next occurrence. Nothing is persisted; a line item whose catalog
// item is currently unpurchasable previews to null.
func (h *LineItemHandler) PreviewLineItem(c *gin.Context) {
	itemID, itemSID, err := parseLineItemRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	preview, err := h.previewLineItemUC.Execute(c.Request.Context(), usecases.PreviewLineItemCommand{
		LineItemID:  itemID,
		LineItemSID: itemSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, mapLineItemError(err))
		return
	}

	if preview == nil {
		utils.SuccessResponse(c, http.StatusOK, "Nothing to preview", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToPreviewOrderDTO(preview))
}

// parseLineItemRef reads the path parameter as either a Stripe-style SID
// ("sli_...") or an internal numeric ID.
func parseLineItemRef(c *gin.Context) (uint, string, error) {
	ref := c.Param("id")
	if id.HasPrefix(ref, id.PrefixLineItem) {
		return 0, ref, nil
	}

	parsed, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return 0, "", errors.NewValidationError("invalid line item identifier", ref)
	}
	return uint(parsed), "", nil
}

// mapLineItemError translates domain errors into transport-level errors so
// callers get proper status codes instead of a blanket 500.
func mapLineItemError(err error) error {
	switch {
	case goerrors.Is(err, lineitem.ErrLineItemNotFound):
		return errors.NewNotFoundError("line item not found")
	case goerrors.Is(err, subscription.ErrSubscriptionNotFound):
		return errors.NewNotFoundError("subscription not found")
	case goerrors.Is(err, catalog.ErrSubscribableNotFound):
		return errors.NewNotFoundError("subscribable not found")
	case goerrors.Is(err, lineitem.ErrSubscribableRequired),
		goerrors.Is(err, lineitem.ErrQuantityNotPositive),
		goerrors.Is(err, lineitem.ErrIntervalNotPositive):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}

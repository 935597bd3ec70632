package handlers

import (
	goerrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loopcart-io/loopcart/internal/application/subscription/dto"
	"github.com/loopcart-io/loopcart/internal/application/subscription/usecases"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/errors"
	"github.com/loopcart-io/loopcart/internal/shared/id"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
	"github.com/loopcart-io/loopcart/internal/shared/utils"
)

// SubscriptionEventHandler exposes the append-only audit trail of a
// subscription. Events are written by the line item lifecycle; this surface
// only reads them.
type SubscriptionEventHandler struct {
	listEventsUC *usecases.ListSubscriptionEventsUseCase
	logger       logger.Interface
}

func NewSubscriptionEventHandler(listEventsUC *usecases.ListSubscriptionEventsUseCase) *SubscriptionEventHandler {
	return &SubscriptionEventHandler{
		listEventsUC: listEventsUC,
		logger:       logger.NewLogger(),
	}
}

func (h *SubscriptionEventHandler) ListEvents(c *gin.Context) {
	ref := c.Param("id")

	cmd := usecases.ListSubscriptionEventsCommand{}
	if id.HasPrefix(ref, id.PrefixSubscription) {
		cmd.SubscriptionSID = ref
	} else {
		parsed, err := strconv.ParseUint(ref, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid subscription identifier", ref))
			return
		}
		cmd.SubscriptionID = uint(parsed)
	}

	pagination := utils.ParsePagination(c)
	cmd.Page = pagination.Page
	cmd.PageSize = pagination.PageSize

	result, err := h.listEventsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if goerrors.Is(err, subscription.ErrSubscriptionNotFound) {
			utils.ErrorResponseWithError(c, errors.NewNotFoundError("subscription not found"))
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.ToEventDTOList(result.Events), result.Total, result.Page, result.PageSize)
}

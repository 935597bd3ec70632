package dto

import (
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/shared/mapper"
)

// ToLineItemDTO converts a subscription line item to its external
// representation with the dummy line item left unset, as used by list rows
// and event payloads. Single-resource reads attach the computed line via
// ToLineItemDTOWithPreview.
func ToLineItemDTO(li *lineitem.SubscriptionLineItem) *LineItemDTO {
	if li == nil {
		return nil
	}

	return &LineItemDTO{
		ID:               li.ID(),
		SID:              li.SID(),
		SubscribableID:   li.SubscribableID(),
		Quantity:         li.Quantity(),
		IntervalUnits:    li.Interval().Units.String(),
		IntervalLength:   li.Interval().Length,
		Installments:     li.Installments(),
		EndDate:          li.EndDate(),
		SubscriptionID:   li.SubscriptionID(),
		SourceLineItemID: li.SourceLineItemID(),
		CreatedAt:        li.CreatedAt(),
		UpdatedAt:        li.UpdatedAt(),
	}
}

// ToLineItemDTOWithPreview converts a line item and attaches its computed
// preview line.
func ToLineItemDTOWithPreview(li *lineitem.SubscriptionLineItem, preview *PreviewLineItemDTO) *LineItemDTO {
	d := ToLineItemDTO(li)
	if d == nil {
		return nil
	}
	d.DummyLineItem = preview
	return d
}

// ToLineItemDTOList converts a slice of line items.
func ToLineItemDTOList(items []*lineitem.SubscriptionLineItem) []*LineItemDTO {
	return mapper.MapSlice(items, ToLineItemDTO)
}

// ToPreviewLineItemDTO converts one preview order line.
func ToPreviewLineItemDTO(line lineitem.PreviewLineItem) *PreviewLineItemDTO {
	return &PreviewLineItemDTO{
		SubscribableID: line.SubscribableID(),
		Quantity:       line.Quantity(),
		UnitPriceCents: line.UnitPriceCents(),
		Currency:       line.Currency(),
		Description:    line.Description(),
		TotalCents:     line.TotalCents(),
	}
}

// ToPreviewOrderDTO converts a preview order. A nil preview order means
// nothing was buildable and converts to nil.
func ToPreviewOrderDTO(po *lineitem.PreviewOrder) *PreviewOrderDTO {
	if po == nil {
		return nil
	}

	return &PreviewOrderDTO{
		UserID:          po.UserID(),
		ShippingAddress: po.ShippingAddress(),
		BillingAddress:  po.BillingAddress(),
		LineItems:       mapper.MapSlice(po.Lines(), ToPreviewLineItemDTO),
		TotalCents:      po.TotalCents(),
	}
}

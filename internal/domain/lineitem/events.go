package lineitem

// Audit event types recorded on the owning subscription when a line item
// changes. No event is recorded for line items without a subscription.
const (
	EventLineItemCreated   = "line_item_created"
	EventLineItemUpdated   = "line_item_updated"
	EventLineItemDestroyed = "line_item_destroyed"
)

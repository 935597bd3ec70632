package dto

import (
	"encoding/json"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
)

// Keys stripped from the external representation before it is written to
// the subscription audit trail. The preview line is transient, the
// recurrence fields are governed by the subscription once the line item is
// owned, and the remaining two are scheduling internals.
const (
	PayloadKeyDummyLineItem    = "dummy_line_item"
	PayloadKeyIntervalUnits    = "interval_units"
	PayloadKeyIntervalLength   = "interval_length"
	PayloadKeyEndDate          = "end_date"
	PayloadKeySourceLineItemID = "source_line_item_id"
)

var excludedPayloadKeys = []string{
	PayloadKeyDummyLineItem,
	PayloadKeyIntervalUnits,
	PayloadKeyIntervalLength,
	PayloadKeyEndDate,
	PayloadKeySourceLineItemID,
}

// ToEventPayload projects a line item into the details map stored with a
// subscription audit event: the external representation minus the excluded
// keys.
func ToEventPayload(li *lineitem.SubscriptionLineItem) (map[string]any, error) {
	d := ToLineItemDTO(li)
	if d == nil {
		return nil, fmt.Errorf("cannot build event payload from nil line item")
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize line item: %w", err)
	}

	payload := make(map[string]any)
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to build event payload: %w", err)
	}

	for _, key := range excludedPayloadKeys {
		delete(payload, key)
	}

	return payload, nil
}

package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
)

// addressToJSON serializes an optional address for storage. Nil stays nil
// so absent addresses keep NULL columns.
func addressToJSON(a *address.Address) (datatypes.JSON, error) {
	if a == nil {
		return nil, nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal address: %w", err)
	}
	return data, nil
}

// addressFromJSON deserializes a stored address; empty columns map to nil.
func addressFromJSON(data datatypes.JSON) (*address.Address, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var a address.Address
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal address: %w", err)
	}
	if a.IsZero() {
		return nil, nil
	}
	return &a, nil
}

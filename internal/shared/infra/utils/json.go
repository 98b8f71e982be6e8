package utils

import (
	"encoding/json"
	"fmt"
)

// MarshalPayload serializa un evento o registro a JSON, indicando el tipo si falla.
func MarshalPayload(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	return data, nil
}

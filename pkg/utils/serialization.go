package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// SerializeModel converts any model to []byte using JSON serialization,
// for storage in Redis or other byte-based storage systems.
func SerializeModel[T any](model T) ([]byte, error) {
	value := reflect.ValueOf(model)
	if value.Kind() == reflect.Pointer && value.IsNil() {
		return nil, fmt.Errorf("cannot serialize nil pointer")
	}

	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model: %w", err)
	}

	return data, nil
}

// DeserializeModel converts []byte back to a model of type T.
func DeserializeModel[T any](data []byte, target *T) error {
	if len(data) == 0 {
		return fmt.Errorf("cannot deserialize empty data")
	}

	if target == nil {
		return fmt.Errorf("target cannot be nil")
	}

	err := json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// ToRecord converts a model into the open field map shape the record store
// persists. Fields tagged with `json:"-"` (such as the store-generated key)
// are left out.
func ToRecord[T any](model T) (map[string]any, error) {
	data, err := SerializeModel(model)
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to convert model to record: %w", err)
	}

	return record, nil
}

// FromRecord decodes a stored field map into a typed model.
func FromRecord[T any](record map[string]any, target *T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return DeserializeModel(data, target)
}

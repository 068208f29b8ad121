package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildReceiptRecordSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the serialized ReceiptRecord shape.
func BuildReceiptRecordSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"item_name":   map[string]any{"type": "string", "minLength": 1},
			"quantity":    map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"unit_price":  map[string]any{"type": "number"},
			"total_price": map[string]any{"type": "number"},
		},
		"required": []string{"item_name", "quantity", "unit_price", "total_price"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"purchased_at":  map[string]any{"type": "string", "format": "date-time"},
			"merchant_name": map[string]any{"type": "string", "minLength": 1},
			"total_amount":  map[string]any{"type": "number", "minimum": 0.0},
			"items":         map[string]any{"type": "array", "items": item},
		},
		"required": []string{"purchased_at", "merchant_name", "total_amount", "items"},
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		b, err := json.Marshal(BuildReceiptRecordSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("receipt_record.json", bytes.NewReader(b)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("receipt_record.json")
	})
	return schema, schemaErr
}

// ValidateRecord checks a ReceiptRecord against the record schema.
func ValidateRecord(rec ReceiptRecord) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}

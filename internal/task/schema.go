package task

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema is the minimum shape a stored record needs to be displayed.
// dateAdded is optional and status is not restricted to the enum.
const recordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["text", "date", "status"],
	"properties": {
		"text":   {"type": "string"},
		"date":   {"type": "string"},
		"status": {"type": "string"}
	}
}`

var recordValidator = jsonschema.MustCompileString("task-record.json", recordSchema)

// filterRecords keeps the decoded JSON values that satisfy the record
// schema, in their original order.
func filterRecords(records []any) []any {
	kept := make([]any, 0, len(records))
	for _, r := range records {
		if err := recordValidator.Validate(r); err != nil {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

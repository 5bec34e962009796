package graph

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// RequestSchema returns the JSON Schema of Request, suitable for declaring
// the layout call as a tool to a language model.
func RequestSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&Request{})
	schema.Title = "documentRelationGraph"
	schema.Description = "Generate a visual relationship graph between documents. " +
		"Returns documents as positioned nodes and relationships as edges."
	return schema
}

// MarshalRequestSchema returns RequestSchema as indented JSON.
func MarshalRequestSchema() ([]byte, error) {
	data, err := json.MarshalIndent(RequestSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return data, nil
}

package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema describes the config file for editors and CI validation.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(new(Config))
	schema.Title = "Tidewater config"
	schema.Description = "Balance and runtime settings. Omitted fields keep their defaults."
	return schema
}

// SchemaJSON renders Schema with a trailing newline.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

package stage

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// The JSON Schema the template consumer publishes for .nara documents.
//
//go:embed nara.schema.json
var schemaJSON string

// CheckSchema validates raw document bytes against the built-in .nara
// schema. It complements Validate: Validate enforces the structural
// invariants the generator owns, the schema mirrors what the consumer
// will accept.
func CheckSchema(doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.Wrap(err, "validating against nara schema")
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return errors.Errorf("schema violations: %s", strings.Join(msgs, "; "))
}

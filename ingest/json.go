package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/casebridge/caseschema"
)

// jsonReshaper passes CASE JSON through unchanged.
type jsonReshaper struct{}

func (j *jsonReshaper) Format() Format { return FormatJSON }

func (j *jsonReshaper) Reshape(filename string, content []byte) (*caseschema.Document, error) {
	var doc caseschema.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("invalid CASE JSON in %s: %w", filename, err)
	}
	return &doc, nil
}

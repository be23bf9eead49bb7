package caseschema

import "fmt"

// ValidationError reports a missing required field, naming the record
// it was found on. Returned before any translation occurs.
type ValidationError struct {
	// Record names the offending record, e.g. "CFDocument" or
	// "CFAssociations[2].originNodeURI".
	Record string

	// Field is the missing required field.
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

// Validate checks required-field presence for the whole document.
// It returns the first violation found, in document order.
func (d *Document) Validate() error {
	if d.CFDocument.Identifier == "" {
		return &ValidationError{Record: "CFDocument", Field: "identifier"}
	}

	for i, item := range d.CFItems {
		if item.Identifier == "" {
			return &ValidationError{Record: fmt.Sprintf("CFItems[%d]", i), Field: "identifier"}
		}
	}

	for i, assoc := range d.CFAssociations {
		record := fmt.Sprintf("CFAssociations[%d]", i)
		switch {
		case assoc.Identifier == "":
			return &ValidationError{Record: record, Field: "identifier"}
		case assoc.AssociationType == "":
			return &ValidationError{Record: record, Field: "associationType"}
		case assoc.OriginNodeURI.Identifier == "":
			return &ValidationError{Record: record + ".originNodeURI", Field: "identifier"}
		case assoc.DestinationNodeURI.Identifier == "":
			return &ValidationError{Record: record + ".destinationNodeURI", Field: "identifier"}
		}
	}

	return nil
}

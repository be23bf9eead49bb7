package fieldmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the column layout of the exported mapping CSV.
var csvHeader = []string{"record", "case_1_1_field", "ieee_scd_field", "asn_ctdl_field", "mapped", "notes"}

// WriteCSV writes the full mapping table as a single CSV, one row per
// entry, with a leading column naming the record kind.
func WriteCSV(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	sections := []struct {
		record  string
		entries []Entry
	}{
		{"cfDocument", table.CFDocument},
		{"cfItem", table.CFItem},
		{"cfAssociation", table.CFAssociation},
		{"format_specific", table.FormatSpecific},
	}

	for _, section := range sections {
		for _, entry := range section.entries {
			row := []string{
				section.record,
				entry.CASEField,
				entry.SCDField,
				entry.CEASNField,
				strconv.FormatBool(entry.Mapped),
				entry.Notes,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write CSV row for %s: %w", section.record, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

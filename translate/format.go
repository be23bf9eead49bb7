package translate

import "fmt"

// Format selects the target representation.
type Format string

const (
	// FormatSCD produces IEEE SCD output with standalone association
	// nodes.
	FormatSCD Format = "ieee_scd"

	// FormatCEASN produces ASN-CTDL output with associations embedded
	// as properties on the origin competency.
	FormatCEASN Format = "asn_ctdl"
)

// ParseFormat resolves a format selector string, accepting the wire
// names used by the HTTP API and CLI.
func ParseFormat(s string) (Format, error) {
	switch s {
	case string(FormatSCD), "ieee", "scd":
		return FormatSCD, nil
	case string(FormatCEASN), "asn", "ceasn":
		return FormatCEASN, nil
	default:
		return "", fmt.Errorf("unknown target format %q (supported: ieee_scd, asn_ctdl)", s)
	}
}

package scd

// relationTypes maps CASE association types to SCD relation types.
// Initialized once; never written after process start.
var relationTypes = map[string]string{
	"isChildOf":     "hasPart",
	"precedes":      "precedes",
	"hasSkillLevel": "competencyLevel",
}

// RelationType returns the SCD relation type for a CASE association
// type. Unmapped types pass through verbatim: an unknown association
// type is a legal relation type, not an error.
func RelationType(associationType string) string {
	if mapped, ok := relationTypes[associationType]; ok {
		return mapped
	}
	return associationType
}

package ceasn

// relationProperties maps CASE association types to the CTDL-ASN
// property embedded on the origin competency. hasSkillLevel has no
// property equivalent and deliberately falls through to the comment
// fallback. Initialized once; never written after process start.
var relationProperties = map[string]string{
	"isChildOf": PropIsChildOf,
	"precedes":  PropPrerequisiteAlignment,
}

// RelationProperty returns the embedded property for a CASE
// association type. ok is false when the type has no property
// equivalent; callers fall back to PropComment.
func RelationProperty(associationType string) (property string, ok bool) {
	property, ok = relationProperties[associationType]
	return property, ok
}

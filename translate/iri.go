package translate

// ResolveIRI derives the node IRI used as @id.
//
// Precedence: an explicit URI is returned verbatim; otherwise the
// identifier becomes a fragment of the base IRI; with no base the
// result is a bare self-referential fragment. Identifiers are taken
// as-is with no percent-encoding and no URI validation.
func ResolveIRI(identifier, explicitURI, baseIRI string) string {
	if explicitURI != "" {
		return explicitURI
	}
	if baseIRI != "" {
		return baseIRI + "#" + identifier
	}
	return "#" + identifier
}

// Package ceasn provides vocabulary constants for the ASN-CTDL target
// format.
//
// ASN-CTDL has no association object: relationships are expressed as
// direct properties on the origin competency (ceasn:isChildOf,
// ceasn:prerequisiteAlignment), with ceasn:comment as the fallback for
// association types that have no property equivalent. Alternative
// labels borrow skos:altLabel, so the fixed Context carries both the
// ceasn and skos namespaces.
package ceasn

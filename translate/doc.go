// Package translate converts CASE documents into JSON-LD graphs in
// one of two target formats.
//
// FormatSCD emits associations as standalone ResourceAssociation
// nodes. FormatCEASN has no association object: each association is
// folded into properties of its origin competency, promoting a
// property to a list when the same key lands twice.
//
// Translation is a pure, single-pass function of its input. All
// lookup tables live in the vocabulary packages as read-only
// constants, so concurrent calls share nothing mutable.
package translate

// Package scd provides vocabulary constants for the IEEE SCD target format.
//
// IEEE SCD (Shareable Competency Definitions) represents competency
// frameworks as JSON-LD graphs in which relationships between
// competencies are first-class ResourceAssociation objects. All terms
// live under a single namespace exposed through the fixed Context map.
package scd

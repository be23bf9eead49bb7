// Package caseschema defines the 1EdTech CASE input records accepted
// by the translator and their boundary validation.
//
// Validation checks required-field presence only. It does not enforce
// referential integrity: an association may reference an identifier
// that matches no item in the document and still validates.
package caseschema

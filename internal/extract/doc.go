// Package extract pulls structured fields out of raw email text.
//
// Extraction is a series of independent regular-expression passes over the
// same input. Each pass produces one or more fields of a Result; unmatched
// fields take a fixed sentinel value rather than failing. The only error
// Parse reports is blank input.
package extract

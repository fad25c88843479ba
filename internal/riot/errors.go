package riot

import "errors"

var (
	// ErrNotFound is returned when the provider has no record for the query
	// (unknown summoner name, unknown match).
	ErrNotFound = errors.New("riot: not found")

	// ErrCorruptResponse is returned when the provider answered but the
	// response does not have the shape we expect, e.g. the queried player is
	// missing from a match's participant list.
	ErrCorruptResponse = errors.New("riot: corrupt response")
)

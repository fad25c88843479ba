package region

import (
	"errors"
	"fmt"
	"strings"
)

// Region is a canonical Riot platform region code.
type Region string

const (
	EUN1 Region = "eun1"
	EUW1 Region = "euw1"
	NA1  Region = "na1"
)

// ErrUnknownRegion is returned when an alias does not map to a supported region.
var ErrUnknownRegion = errors.New("unknown region")

// Parse maps a user-facing region alias to its canonical code.
// Matching is case-insensitive; anything outside the supported set is an error,
// never a silent default.
func Parse(alias string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(alias)) {
	case "eune":
		return EUN1, nil
	case "euw":
		return EUW1, nil
	case "na":
		return NA1, nil
	}
	return "", fmt.Errorf("%w: %q (use EUNE, EUW or NA)", ErrUnknownRegion, alias)
}

// Valid reports whether r is one of the canonical codes. Used when validating
// persisted roster documents.
func (r Region) Valid() bool {
	switch r {
	case EUN1, EUW1, NA1:
		return true
	}
	return false
}

func (r Region) String() string {
	return string(r)
}

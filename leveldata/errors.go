package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredZone is returned when a level has no start zone, or
	// no end zone and is not endless.
	ErrMissingRequiredZone = errors.New("missing required zone")
	// ErrDuplicateZone is returned when a level has more than one start or end.
	ErrDuplicateZone = errors.New("duplicate zone")
	// ErrNoLevels is returned when a level directory holds no level files.
	ErrNoLevels = errors.New("no levels found")
)

// ZoneError reports a zone problem in a specific level.
type ZoneError struct {
	Level string
	Zone  string
	Err   error
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("level %s: zone %q: %v", e.Level, e.Zone, e.Err)
}

func (e *ZoneError) Unwrap() error {
	return e.Err
}

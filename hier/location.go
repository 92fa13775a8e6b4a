package hier

import (
	"slices"

	"github.com/ghettovoice/webaddr/internal/types"
)

// Location is the plain value implementation of [Path]: an ascent count
// and a descent sequence with no root. Building one performs no
// validation beyond what the caller already guaranteed.
type Location struct {
	ascent  int
	descent []Segment
}

var (
	_ Path                      = Location{}
	_ types.Equalable           = Location{}
	_ types.Cloneable[Location] = Location{}
)

// NewLocation builds a [Location] from an ascent count and a descent
// sequence, most distant segment last. The descent slice is copied.
func NewLocation(ascent int, descent []Segment) Location {
	if ascent < 0 {
		ascent = 0
	}
	return Location{
		ascent:  ascent,
		descent: slices.Clone(descent),
	}
}

// Ascent returns the number of parent-directory hops.
func (l Location) Ascent() int { return l.ascent }

// Descent returns the named segments, most distant segment last.
func (l Location) Descent() ([]Segment, error) { return l.descent, nil }

// IsZero reports whether the location has no ascent and no descent.
func (l Location) IsZero() bool { return l.ascent == 0 && len(l.descent) == 0 }

// Clone returns a deep copy of the location.
func (l Location) Clone() Location {
	l.descent = slices.Clone(l.descent)
	return l
}

// Equal reports whether the location equals the provided value,
// accepting Location and *Location.
func (l Location) Equal(val any) bool {
	var other Location
	switch v := val.(type) {
	case Location:
		other = v
	case *Location:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return l.ascent == other.ascent && slices.Equal(l.descent, other.descent)
}

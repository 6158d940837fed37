package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// StopKind is the role a stop plays within a day
type StopKind string

const (
	StopKindStart StopKind = "start"
	StopKindVia   StopKind = "via"
	StopKindEnd   StopKind = "end"
)

var (
	ErrInvalidStopSeq  = errors.New("stop seq must be positive")
	ErrInvalidStopKind = errors.New("stop kind must be start, via or end")
)

func (k StopKind) IsValid() bool {
	switch k {
	case StopKindStart, StopKindVia, StopKindEnd:
		return true
	default:
		return false
	}
}

// Stop is a Place scheduled at a position within a Day.
type Stop struct {
	ID    uuid.UUID `json:"id"`
	Place Place     `json:"place"`
	Seq   int       `json:"seq"`
	Kind  StopKind  `json:"kind"`
	Fixed bool      `json:"fixed"`
}

// NewStop builds a stop. Start and end stops are always fixed.
func NewStop(id uuid.UUID, place Place, seq int, kind StopKind, fixed bool) (*Stop, error) {
	if seq <= 0 {
		return nil, errors.Wrapf(ErrInvalidStopSeq, "got %d", seq)
	}
	if !kind.IsValid() {
		return nil, errors.Wrapf(ErrInvalidStopKind, "got %q", kind)
	}

	if kind == StopKindStart || kind == StopKindEnd {
		fixed = true
	}

	return &Stop{
		ID:    id,
		Place: place,
		Seq:   seq,
		Kind:  kind,
		Fixed: fixed,
	}, nil
}

// Reorderable reports whether an optimizer may move the stop.
func (s Stop) Reorderable() bool {
	return s.Kind == StopKindVia && !s.Fixed
}

// DisplayName falls back to the address when the place has no name.
func (s Stop) DisplayName() string {
	if s.Place.Name != "" {
		return s.Place.Name
	}

	return s.Place.Address
}

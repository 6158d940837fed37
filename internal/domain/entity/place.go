package entity

import (
	"math"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate validates lat in [-90, 90] and lon in [-180, 180].
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if !c.IsValid() {
		return Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "lat=%v lon=%v", lat, lon)
	}

	return c, nil
}

func (c Coordinate) ValidLatitude() bool {
	return !math.IsNaN(c.Lat) && c.Lat >= -90 && c.Lat <= 90
}

func (c Coordinate) ValidLongitude() bool {
	return !math.IsNaN(c.Lon) && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinate) IsValid() bool {
	return c.ValidLatitude() && c.ValidLongitude()
}

// Point returns the orb representation, which is ordered [lon, lat].
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Place is an immutable named location. Position is nil while the place has no
// resolved coordinates.
type Place struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address,omitempty"`
	Position *Coordinate `json:"position,omitempty"`
}

// NewPlace builds a place with a validated position.
func NewPlace(id uuid.UUID, name, address string, lat, lon float64) (Place, error) {
	pos, err := NewCoordinate(lat, lon)
	if err != nil {
		return Place{}, err
	}

	return Place{ID: id, Name: name, Address: address, Position: &pos}, nil
}

func (p Place) HasPosition() bool {
	return p.Position != nil
}

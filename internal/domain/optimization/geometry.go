package optimization

import (
	"itinerary/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const geometryFormatGeoJSON = "geojson"

var ErrUnsupportedGeometry = errors.New("unsupported route geometry")

// DecodeGeometry reads the advisory route line. It returns nil without error
// when the response carries no geometry.
func DecodeGeometry(g *Geometry) (*entity.RouteGeometry, error) {
	if g == nil || len(g.Route) == 0 || string(g.Route) == "null" {
		return nil, nil
	}

	if g.Format != "" && g.Format != geometryFormatGeoJSON {
		return nil, errors.Wrapf(ErrUnsupportedGeometry, "format %q", g.Format)
	}

	decoded, err := geojson.UnmarshalGeometry(g.Route)
	if err != nil {
		return nil, errors.Wrap(err, "decode route geometry")
	}

	geom := decoded.Geometry()
	if geom == nil {
		return nil, errors.Wrap(ErrUnsupportedGeometry, "empty geometry")
	}

	path, ok := geom.(orb.LineString)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedGeometry, "type %s", geom.GeoJSONType())
	}

	bound := path.Bound()
	if b := g.Bounds; b != nil {
		bound = orb.Bound{
			Min: orb.Point{b.MinLng, b.MinLat},
			Max: orb.Point{b.MaxLng, b.MaxLat},
		}
	}

	return &entity.RouteGeometry{Path: path, Bound: bound}, nil
}

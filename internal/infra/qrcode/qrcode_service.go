package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"itinerary/config"
	"itinerary/internal/domain/entity"
	"itinerary/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const directionsURL = "https://www.google.com/maps/dir/"

// ErrRouteNotShareable is returned when fewer than two stops have coordinates.
var ErrRouteNotShareable = errors.New("route needs at least two stops with coordinates")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig reads the qrcode config section, falling back to 256px at level M.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// RouteURL builds a Google Maps directions link visiting the stops in the given
// order. Stops without coordinates are skipped.
func (s *qrcodeService) RouteURL(stops []entity.Stop, profile entity.VehicleProfile) (string, error) {
	points := make([]string, 0, len(stops))
	for _, stop := range stops {
		if stop.Place.Position == nil {
			continue
		}
		points = append(points, formatPoint(stop.Place.Position))
	}

	if len(points) < 2 {
		return "", ErrRouteNotShareable
	}

	query := url.Values{}
	query.Set("api", "1")
	query.Set("origin", points[0])
	query.Set("destination", points[len(points)-1])
	query.Set("travelmode", travelMode(profile))
	if waypoints := points[1 : len(points)-1]; len(waypoints) > 0 {
		query.Set("waypoints", strings.Join(waypoints, "|"))
	}

	return directionsURL + "?" + query.Encode(), nil
}

// GenerateRouteQR encodes RouteURL as a PNG QR code
func (s *qrcodeService) GenerateRouteQR(stops []entity.Stop, profile entity.VehicleProfile) ([]byte, error) {
	link, err := s.RouteURL(stops, profile)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func formatPoint(c *entity.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lon, 'f', 6, 64)
}

func travelMode(profile entity.VehicleProfile) string {
	switch profile {
	case entity.VehicleProfileBike:
		return "bicycling"
	case entity.VehicleProfileFoot:
		return "walking"
	default:
		return "driving"
	}
}

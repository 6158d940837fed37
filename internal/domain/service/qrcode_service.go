package service

import (
	"itinerary/internal/domain/entity"
)

// QRCodeService renders share codes for a day's route
type QRCodeService interface {
	// GenerateRouteQR encodes a navigation link through the stops in seq order as PNG
	GenerateRouteQR(stops []entity.Stop, profile entity.VehicleProfile) ([]byte, error)

	// RouteURL returns the navigation link encoded by GenerateRouteQR
	RouteURL(stops []entity.Stop, profile entity.VehicleProfile) (string, error)
}

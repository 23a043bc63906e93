package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders scannable tracking codes for placed orders.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG image encoding the public tracking
	// URL of the order.
	GenerateTrackingQR(orderID uuid.UUID) ([]byte, error)
}

package qrcode

import (
	"fmt"
	"strings"

	"bistro/config"
	"bistro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch cfg.ErrorCorrectionLevel {
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

	return &qrcodeService{
		size:                 cfg.Size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// GenerateTrackingQR generates a PNG QR code pointing at the public tracking
// page of the order.
func (s *qrcodeService) GenerateTrackingQR(orderID uuid.UUID) ([]byte, error) {
	trackingURL := fmt.Sprintf("%s/track/%s", s.baseURL, orderID)

	qrCode, err := qrcode.New(trackingURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

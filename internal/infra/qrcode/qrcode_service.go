package qrcode

import (
	"strings"

	"locust/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	ingestPath  = "/api/ingest"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	enrollmentURL        string
}

// NewQRCodeService creates a QR code service that encodes the ingest URL under baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		enrollmentURL:        strings.TrimRight(baseURL, "/") + ingestPath,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EnrollmentURL returns the URL encoded into the enrollment QR code
func (s *qrcodeService) EnrollmentURL() string {
	return s.enrollmentURL
}

// GenerateEnrollmentQR renders the enrollment URL as a PNG
func (s *qrcodeService) GenerateEnrollmentQR() ([]byte, error) {
	qrCode, err := qrcode.New(s.enrollmentURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateEnrollmentQR encodes the ingest URL devices should report to
	GenerateEnrollmentQR() ([]byte, error)

	// EnrollmentURL returns the URL encoded by GenerateEnrollmentQR
	EnrollmentURL() string
}

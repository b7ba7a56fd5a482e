package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code pointing at the public page of username
	GenerateProfileQR(username string) ([]byte, error)

	// ProfileURL returns the public page URL encoded in the QR code
	ProfileURL(username string) string
}

package qrcode

import (
	"net/url"
	"strings"

	"biolink/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProfileURL returns the public page URL of username
func (s *qrcodeService) ProfileURL(username string) string {
	return s.baseURL + "/p/" + url.PathEscape(username)
}

// GenerateProfileQR generates a PNG QR code that opens the public page of username
func (s *qrcodeService) GenerateProfileQR(username string) ([]byte, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}

	qrCode, err := qrcode.New(s.ProfileURL(username), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

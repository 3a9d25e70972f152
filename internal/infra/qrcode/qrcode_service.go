// Package qrcode renders and parses listing share codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	"github.com/skip2/go-qrcode"
)

const listingCodeType = "listing"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	shareBaseURL         string
}

// QRCodeData is the payload encoded in a share code.
type QRCodeData struct {
	BookID string `json:"book_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. shareBaseURL, when
// set, is joined with the book ID into a link carried in the payload.
func NewQRCodeService(size int, errorCorrectionLevel, shareBaseURL string) service.QRCodeService {
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
		shareBaseURL:         strings.TrimRight(shareBaseURL, "/"),
	}
}

// GenerateListingQR renders a PNG share code for bookID.
func (s *qrcodeService) GenerateListingQR(bookID string) ([]byte, error) {
	if bookID == "" {
		return nil, errors.New("book ID is required")
	}

	data := QRCodeData{BookID: bookID, Type: listingCodeType}
	if s.shareBaseURL != "" {
		data.URL = s.shareBaseURL + "/" + bookID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseListingQR returns the book ID carried by a decoded share code.
func (s *qrcodeService) ParseListingQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}
	if data.Type != listingCodeType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.BookID == "" {
		return "", errors.New("QR code carries no book ID")
	}

	return data.BookID, nil
}

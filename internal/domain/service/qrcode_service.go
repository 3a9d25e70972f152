package service

// QRCodeService defines the interface for listing share code generation and parsing
type QRCodeService interface {
	// GenerateListingQR renders a PNG share code for a listing
	GenerateListingQR(bookID string) ([]byte, error)

	// ParseListingQR parses share code data and returns the listing ID
	ParseListingQR(qrData string) (string, error)
}

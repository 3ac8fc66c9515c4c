package service

// QRCodeService renders product verification payloads as QR code images.
type QRCodeService interface {
	// GenerateProductQR encodes a product's anti-fake code as a PNG QR image.
	GenerateProductQR(antiFakeCode string) ([]byte, error)
}

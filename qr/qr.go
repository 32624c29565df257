// Package qr renders the pickup code as a QR image embedded in a data URL,
// matching what the check-in confirmation screen and the WhatsApp message
// link to.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 200

// DataURL encodes text as a 200px PNG QR code and returns it as a
// base64 data URL.
func DataURL(text string) (string, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

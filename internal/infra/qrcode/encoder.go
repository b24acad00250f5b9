// Package qrcode renders payment descriptors as PNG QR codes.
package qrcode

import (
	"storefront-backend/internal/pkg/errs"

	qr "github.com/skip2/go-qrcode"
)

type Encoder struct {
	level qr.RecoveryLevel
}

func NewEncoder() *Encoder {
	return &Encoder{level: qr.Medium}
}

// PNG returns a size x size PNG encoding content.
func (e *Encoder) PNG(content string, size int) ([]byte, error) {
	png, err := qr.Encode(content, e.level, size)
	if err != nil {
		return nil, errs.Wrap(err, "encode qr code")
	}
	return png, nil
}

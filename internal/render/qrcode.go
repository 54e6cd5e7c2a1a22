package render

import (
	"image"

	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/pixelplanet/internal/state"
)

// qrFor returns the HUD QR code encoding the session's planet code. The image
// is regenerated only when the planet changes, not every tick.
func (c *Compositor) qrFor(s state.Session) image.Image {
	code := s.Code()
	if code == c.qrPayload && c.qrImage != nil {
		return c.qrImage
	}
	qr, err := qrcode.New(code, qrcode.Low)
	if err != nil {
		c.Logger.Errorf("render", "qr code for %s failed: %v", code, err)
		return nil
	}
	c.qrPayload = code
	c.qrImage = qr.Image(hudQRSizePx)
	return c.qrImage
}

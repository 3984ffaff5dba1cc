package draw

import (
	"image"
	"image/color"
	"iter"

	"github.com/skip2/go-qrcode"

	"github.com/BeatGlow/pixels"
)

// QRCode draws the dark modules of a QR code for content with its top-left
// corner at at, each module scale pixels square. The returned rectangle is the
// area covered by the code including its quiet zone; fill it with a light
// color first for the code to scan.
func QRCode(content string, at image.Point, scale int, c color.Color) (iter.Seq[pixels.Pixel], image.Rectangle, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	if scale < 1 {
		scale = 1
	}

	bitmap := q.Bitmap()
	area := image.Rectangle{Min: at, Max: at.Add(image.Pt(len(bitmap)*scale, len(bitmap)*scale))}
	return stream(c, func(plot plotFunc) {
		for y, row := range bitmap {
			for x, dark := range row {
				if !dark {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					hline(plot, at.X+x*scale, at.Y+y*scale+dy, scale)
				}
			}
		}
	}), area, nil
}

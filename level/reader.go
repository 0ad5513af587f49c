package level

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"

	"github.com/bodgit/levels/tile"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrTooSmall is returned when an image cannot hold every sector.
var ErrTooSmall = errors.New("level: image too small")

func checkSize(width, height int) error {
	if width < PixelX || height < PixelY {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, width, height, PixelX, PixelY)
	}
	return nil
}

// FromImage classifies every pixel of m that falls within a sector.
func FromImage(m image.Image) (*Level, error) {
	b := m.Bounds()
	if err := checkSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	l := new(Level)

	for sy := 0; sy < sectorY; sy++ {
		for sx := 0; sx < sectorX; sx++ {
			s := l.Sector(sx, sy)
			for x := 0; x < sectorWidth; x++ {
				for y := 0; y < sectorHeight; y++ {
					dx := b.Min.X + sx*sectorWidth + x
					dy := b.Min.Y + sy*sectorHeight + y

					s[x][y] = tile.Classify(m.At(dx, dy))
				}
			}
		}
	}

	return l, nil
}

// Decode reads an image in any registered format from r and returns it as a
// Level along with the format name.
func Decode(r io.Reader) (*Level, string, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}

	l, err := FromImage(m)
	if err != nil {
		return nil, format, err
	}

	return l, format, nil
}

// DecodeConfig returns the color model and dimensions of a level image without
// decoding the entire image. It fails early if the image is too small.
func DecodeConfig(r io.Reader) (image.Config, string, error) {
	c, format, err := image.DecodeConfig(r)
	if err != nil {
		return image.Config{}, "", err
	}

	if err := checkSize(c.Width, c.Height); err != nil {
		return image.Config{}, format, err
	}

	return c, format, nil
}

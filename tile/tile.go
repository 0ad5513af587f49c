/*
Package tile implements the classification of a single level image pixel into
a tile code.

A pixel whose red, green and blue channels are equal is a gray tile and its
code is the channel intensity scaled to the range [0, 1]. Pure red (255, 0, 0)
is code 2, pure yellow (255, 255, 0) is code 3 and every other color is the
background code 0. The tests are applied in that order so black and white are
gray tiles rather than background.
*/
package tile

import (
	"image/color"
)

// Kind identifies which rule classified a pixel.
type Kind int

// The values of Red and Yellow double as their numeric tile codes.
const (
	Background Kind = iota
	Gray
	Red
	Yellow
)

const maxIntensity = 0xff

func (k Kind) String() string {
	switch k {
	case Background:
		return "background"
	case Gray:
		return "gray"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Code is the classification of one pixel. Level is only meaningful for Gray
// tiles.
type Code struct {
	Kind  Kind
	Level float64
}

// Value returns the numeric tile code.
func (c Code) Value() float64 {
	switch c.Kind {
	case Gray:
		return c.Level
	case Red, Yellow:
		return float64(c.Kind)
	default:
		return 0
	}
}

// Classify returns the tile code for the color c. Alpha is ignored; c is
// compared using its non-premultiplied 8-bit channels.
func Classify(c color.Color) Code {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case n.R == n.G && n.G == n.B:
		return Code{Kind: Gray, Level: float64(n.R) / maxIntensity}
	case n.R == maxIntensity && n.G == 0 && n.B == 0:
		return Code{Kind: Red}
	case n.R == maxIntensity && n.G == maxIntensity && n.B == 0:
		return Code{Kind: Yellow}
	default:
		return Code{Kind: Background}
	}
}

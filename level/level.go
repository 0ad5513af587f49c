/*
Package level implements a decoder for level layout images.

A level is 104 by 104 pixels which is split into sixty-four 13 by 13 sectors,
eight across and eight down. Every pixel is classified into a tile code by
package tile. Sectors are numbered row by row starting from the top left and
each sector is stored column by column, so a code is addressed as
level[sector][x][y].

Images larger than 104 by 104 are accepted and anything outside the top left
104 by 104 pixels is ignored.
*/
package level

import (
	"github.com/bodgit/levels/tile"
)

const (
	sectorWidth  = 13
	sectorHeight = sectorWidth
	sectorX      = 8
	sectorY      = 8

	// NumSectors is the number of sectors in a level
	NumSectors = sectorX * sectorY

	// PixelX and PixelY are the minimum dimensions of a level image
	PixelX = sectorWidth * sectorX
	PixelY = sectorHeight * sectorY
)

// Sector is a 13 by 13 block of tile codes indexed by column then row.
type Sector [sectorWidth][sectorHeight]tile.Code

// Level is the complete set of sectors in row-major order.
type Level [NumSectors]Sector

// Sector returns the sector at sector column sx and sector row sy.
func (l *Level) Sector(sx, sy int) *Sector {
	return &l[sy*sectorX+sx]
}

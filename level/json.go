package level

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bodgit/levels/tile"
)

var errBadShape = errors.New("level: wrong number of codes")

// MarshalJSON encodes the level as a JSON array of sectors, each an array of
// columns, each an array of tile codes. Elements are separated by a comma and
// a single space.
func (l *Level) MarshalJSON() ([]byte, error) {
	// Every code is at most 20 bytes plus a separator
	b := make([]byte, 0, NumSectors*sectorWidth*sectorHeight*22)

	b = append(b, '[')
	for i := range l {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = append(b, '[')
		for x := range l[i] {
			if x > 0 {
				b = append(b, ',', ' ')
			}
			b = append(b, '[')
			for y, c := range l[i][x] {
				if y > 0 {
					b = append(b, ',', ' ')
				}
				b = c.AppendJSON(b)
			}
			b = append(b, ']')
		}
		b = append(b, ']')
	}
	b = append(b, ']')

	return b, nil
}

// UnmarshalJSON decodes the output of MarshalJSON. The document must contain
// exactly 64 sectors of 13 columns of 13 codes.
func (l *Level) UnmarshalJSON(b []byte) error {
	var sectors [][][]tile.Code
	if err := json.Unmarshal(b, &sectors); err != nil {
		return err
	}

	if len(sectors) != NumSectors {
		return fmt.Errorf("%w: %d sectors", errBadShape, len(sectors))
	}

	var tmp Level
	for i, s := range sectors {
		if len(s) != sectorWidth {
			return fmt.Errorf("%w: sector %d has %d columns", errBadShape, i, len(s))
		}
		for x, column := range s {
			if len(column) != sectorHeight {
				return fmt.Errorf("%w: sector %d column %d has %d codes", errBadShape, i, x, len(column))
			}
			copy(tmp[i][x][:], column)
		}
	}
	*l = tmp

	return nil
}

package tile

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	errBadCode  = errors.New("tile: invalid code")
	errBadLevel = errors.New("tile: gray level out of range")
)

// AppendJSON appends the JSON encoding of c to b. Gray levels always carry a
// decimal point so 0.0 and 1.0 stay distinguishable from the integer codes.
func (c Code) AppendJSON(b []byte) []byte {
	if c.Kind != Gray {
		return strconv.AppendInt(b, int64(c.Value()), 10)
	}
	n := len(b)
	b = strconv.AppendFloat(b, c.Level, 'f', -1, 64)
	if bytes.IndexByte(b[n:], '.') < 0 {
		b = append(b, '.', '0')
	}
	return b
}

// MarshalJSON implements the json.Marshaler interface.
func (c Code) MarshalJSON() ([]byte, error) {
	return c.AppendJSON(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Numbers with a
// fraction or exponent are gray levels, the integers 0, 2 and 3 are the
// background, red and yellow codes.
func (c *Code) UnmarshalJSON(b []byte) error {
	s := string(b)
	if bytes.ContainsAny(b, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", errBadCode, s)
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("%w: %s", errBadLevel, s)
		}
		*c = Code{Kind: Gray, Level: f}
		return nil
	}

	switch s {
	case "0":
		*c = Code{Kind: Background}
	case "2":
		*c = Code{Kind: Red}
	case "3":
		*c = Code{Kind: Yellow}
	default:
		return fmt.Errorf("%w: %s", errBadCode, s)
	}
	return nil
}

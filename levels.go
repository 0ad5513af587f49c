/*
Package levels is a library for converting a level layout image into the JSON
tile code document consumed by the game.
*/
package levels

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/levels/level"
)

// DefaultInput is the level image read relative to the working directory
const DefaultInput = "levels.png"

type Converter struct {
	logger *log.Logger
}

// New returns a Converter that logs progress to logger. A nil logger discards
// everything.
func New(logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Converter{
		logger: logger,
	}
}

// Convert decodes the image in file and writes the level document followed by
// a newline to w. Nothing is written unless the whole document was produced.
func (c *Converter) Convert(file string, w io.Writer) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	// Reject undersized images from the header alone
	cfg, _, err := level.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	c.logger.Printf("Image \"%s\" is %dx%d\n", file, cfg.Width, cfg.Height)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	l, format, err := level.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	c.logger.Printf("Decoded %s image \"%s\"\n", format, file)

	b, err := json.Marshal(l)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	if _, err := w.Write(b); err != nil {
		return err
	}
	c.logger.Printf("Wrote %d sectors\n", len(l))

	return nil
}

package main

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/levels"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "levels2json"
	app.Usage = "Convert " + levels.DefaultInput + " into level tile codes"
	app.Version = "1.0.0"
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	// Positional arguments are ignored
	app.Action = func(c *cli.Context) error {
		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(c.App.ErrWriter)
		}

		if err := levels.New(logger).Convert(levels.DefaultInput, c.App.Writer); err != nil {
			return cli.Exit(err, 1)
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

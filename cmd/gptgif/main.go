package main

import (
	"io"
	"log"
	"os"

	"github.com/gptenv/gptgif"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "gptgif"
	app.Usage = "encode binary files as animated hex glyph GIFs"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		return cli.NewExitError("usage: gptgif create-from-files OUTPUT INPUT [INPUT...]", 1)
	}

	app.Commands = []*cli.Command{
		{
			Name:        "create-from-files",
			Aliases:     []string{"cf"},
			Usage:       "Encode input files into an animated GIF",
			Description: "Reads every input file in order and renders its bytes as hexadecimal glyphs, one 640x480 frame per 4800 characters. Inputs that cannot be opened are skipped.",
			ArgsUsage:   "OUTPUT INPUT [INPUT...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "mono",
					Usage: "use the black and white variant instead of the animated gradient",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				variant := gptgif.Gradient
				if c.Bool("mono") {
					variant = gptgif.Monochrome
				}

				args := c.Args().Slice()

				e := gptgif.New(variant, logger)
				if err := e.EncodeFile(args[0], args[1:]...); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

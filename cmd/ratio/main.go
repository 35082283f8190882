// Command ratio does exact arithmetic on fractions written as m/n.
//
// Operands that start with '-' must follow "--", for example:
//
//	ratio add -- -1/2 3/4
package main

import (
	"os"

	"github.com/kbolino/ratio/internal/config"
	"github.com/kbolino/ratio/internal/logger"
	"github.com/urfave/cli/v2"
)

const BuildVersion = "v0.1.0"

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		logger.Errorf("%s %s: %s", app.Name, BuildVersion, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	custom := config.Default()

	app := cli.NewApp()
	app.Name = "ratio"
	app.Usage = "Exact arithmetic on arbitrary-precision fractions."
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.IntFlag{
			Name:  "limiter",
			Usage: "the maximum number of times an identical log line is printed",
		},
	}
	app.Before = func(c *cli.Context) error {
		if file := c.String("config"); file != "" {
			loaded, err := config.Initialize(file)
			if err != nil {
				return err
			}
			*custom = *loaded
		}
		if c.IsSet("log") {
			custom.Log.Level = c.Int("log")
		}
		if c.IsSet("filter") {
			custom.Log.Filter = c.String("filter")
		}
		if c.IsSet("limiter") {
			custom.Log.Limiter = c.Int("limiter")
		}
		logger.SetLevel(custom.Log.Level)
		logger.SetLimiter(custom.Log.Limiter)
		return logger.SetFilter(custom.Log.Filter)
	}
	app.Commands = []*cli.Command{
		{
			Name:      "reduce",
			Usage:     "Print each fraction in lowest terms",
			ArgsUsage: "FRACTION...",
			Action:    reduceCmd,
		},
		binaryCommand("add", "Add two fractions", addOp),
		binaryCommand("sub", "Subtract the second fraction from the first", subOp),
		binaryCommand("mul", "Multiply two fractions", mulOp),
		binaryCommand("div", "Divide the first fraction by the second", divOp),
		{
			Name:      "cmp",
			Usage:     "Compare two fractions, printing -1, 0 or 1",
			ArgsUsage: "X Y",
			Action:    cmpCmd,
		},
		{
			Name:   "sum",
			Usage:  "Sum the fractions read from standard input, one per line",
			Action: sumCmd,
		},
		{
			Name:      "decimal",
			Usage:     "Print a fraction as a rounded decimal",
			ArgsUsage: "FRACTION",
			Action: func(c *cli.Context) error {
				return decimalCmd(c, custom.Output.Precision)
			},
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "prec",
					Aliases: []string{"p"},
					Usage:   "digits after the decimal point, defaults to the configured precision",
				},
			},
		},
		{
			Name:      "gcd",
			Usage:     "Print the GCD of two integers and the Bézout coefficients",
			ArgsUsage: "M N",
			Action:    gcdCmd,
		},
		{
			Name:      "pack",
			Usage:     "Print the msgpack encoding of a fraction in hex",
			ArgsUsage: "FRACTION",
			Action:    packCmd,
		},
		{
			Name:      "unpack",
			Usage:     "Decode a hex msgpack fraction",
			ArgsUsage: "HEX",
			Action:    unpackCmd,
		},
	}
	return app
}

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/kbolino/ratio"
	"github.com/kbolino/ratio/bigint"
	"github.com/kbolino/ratio/internal/logger"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v4"
)

type binaryOp func(x, y ratio.N) (ratio.N, error)

func addOp(x, y ratio.N) (ratio.N, error) { return x.Add(y), nil }
func subOp(x, y ratio.N) (ratio.N, error) { return x.Sub(y), nil }
func mulOp(x, y ratio.N) (ratio.N, error) { return x.Mul(y), nil }
func divOp(x, y ratio.N) (ratio.N, error) { return x.TryDiv(y) }

func binaryCommand(name, usage string, op binaryOp) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "X Y",
		Action: func(c *cli.Context) error {
			x, y, err := parsePair(c)
			if err != nil {
				return err
			}
			z, err := op(x, y)
			if err != nil {
				return err
			}
			logger.Verbosef("result %s %s %s = %s", name, x, y, z)
			fmt.Fprintln(c.App.Writer, z)
			return nil
		},
	}
}

func parseArg(s string) (ratio.N, error) {
	x, err := ratio.ParseRationalString(s)
	if err != nil {
		return ratio.N{}, err
	}
	logger.Verbosef("parsed %s as %s", s, x)
	return x, nil
}

func parsePair(c *cli.Context) (x, y ratio.N, err error) {
	if c.NArg() != 2 {
		return x, y, fmt.Errorf("%s: expected 2 arguments, got %d", c.Command.Name, c.NArg())
	}
	x, err = parseArg(c.Args().Get(0))
	if err != nil {
		return x, y, err
	}
	y, err = parseArg(c.Args().Get(1))
	return x, y, err
}

func reduceCmd(c *cli.Context) error {
	for _, s := range c.Args().Slice() {
		x, err := parseArg(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, x)
	}
	return nil
}

func cmpCmd(c *cli.Context) error {
	x, y, err := parsePair(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, x.Cmp(y))
	return nil
}

func sumCmd(c *cli.Context) error {
	var total ratio.N
	scanner := bufio.NewScanner(c.App.Reader)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		x, err := parseArg(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		total = total.Add(x)
		logger.Debugf("running total %s", total)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, total)
	return nil
}

func decimalCmd(c *cli.Context, precision int) error {
	if c.NArg() != 1 {
		return fmt.Errorf("decimal: expected 1 argument, got %d", c.NArg())
	}
	x, err := parseArg(c.Args().First())
	if err != nil {
		return err
	}
	if c.IsSet("prec") {
		precision = c.Int("prec")
	}
	fmt.Fprintln(c.App.Writer, x.DecimalString(precision))
	return nil
}

func gcdCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("gcd: expected 2 arguments, got %d", c.NArg())
	}
	m, err := bigint.Parse(c.Args().Get(0))
	if err != nil {
		return err
	}
	n, err := bigint.Parse(c.Args().Get(1))
	if err != nil {
		return err
	}
	a, b, d := bigint.ExtGCD(m, n)
	fmt.Fprintf(c.App.Writer, "gcd:\t%s\na:\t%s\nb:\t%s\n", d, a, b)
	return nil
}

func packCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("pack: expected 1 argument, got %d", c.NArg())
	}
	x, err := parseArg(c.Args().First())
	if err != nil {
		return err
	}
	data, err := msgpack.Marshal(x)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(data))
	return nil
}

func unpackCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("unpack: expected 1 argument, got %d", c.NArg())
	}
	raw, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return err
	}
	var x ratio.N
	err = msgpack.Unmarshal(raw, &x)
	if err != nil {
		return fmt.Errorf("unpack %x: %w", raw, err)
	}
	fmt.Fprintln(c.App.Writer, x)
	return nil
}

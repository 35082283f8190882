package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbolino/ratio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"ratio"}, args...))
	return out.String(), err
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		Args []string
		Want string
	}{
		{[]string{"add", "1/3", "1/6"}, "1/2\n"},
		{[]string{"sub", "--", "-1/2", "1/2"}, "-1/1\n"},
		{[]string{"mul", "4611686018427387904/1", "4611686018427387904/1"}, "21267647932558653966460912964485513216/1\n"},
		{[]string{"div", "2/5", "3/7"}, "14/15\n"},
		{[]string{"cmp", "1/3", "2/6"}, "0\n"},
		{[]string{"cmp", "--", "-1/3", "1/6"}, "-1\n"},
		{[]string{"reduce", "2/4", "10/-4", "0/9"}, "1/2\n-5/2\n0/1\n"},
		{[]string{"decimal", "--prec", "3", "76/7"}, "10.857\n"},
		{[]string{"decimal", "1/3"}, "0.3333333333\n"},
		{[]string{"gcd", "240", "46"}, "gcd:\t2\na:\t-9\nb:\t47\n"},
		{[]string{"pack", "-1/2"}, "d60201010102\n"},
		{[]string{"unpack", "d60201010102"}, "-1/2\n"},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.Args, " "), func(t *testing.T) {
			out, err := run(t, "", c.Args...)
			require.NoError(t, err)
			assert.Equal(t, c.Want, out)
		})
	}
}

func TestErrors(t *testing.T) {
	_, err := run(t, "", "div", "1/2", "0/1")
	assert.ErrorIs(t, err, ratio.ErrDivByZero)

	_, err = run(t, "", "add", "1/2", "x")
	assert.ErrorIs(t, err, ratio.ErrFmtInvalid)

	_, err = run(t, "", "add", "1/2")
	assert.Error(t, err)

	_, err = run(t, "", "reduce", "3/0")
	assert.ErrorIs(t, err, ratio.ErrDivByZero)

	_, err = run(t, "", "unpack", "d60201010100")
	assert.ErrorIs(t, err, ratio.ErrDivByZero)

	_, err = run(t, "", "unpack")
	assert.EqualError(t, err, "unpack: expected 1 argument, got 0")
	_, err = run(t, "", "unpack", "d6", "02")
	assert.EqualError(t, err, "unpack: expected 1 argument, got 2")
}

func TestSum(t *testing.T) {
	out, err := run(t, "1/3\n\n1/6\n 2/4 \n", "sum")
	require.NoError(t, err)
	assert.Equal(t, "1/1\n", out)

	out, err = run(t, "", "sum")
	require.NoError(t, err)
	assert.Equal(t, "0/1\n", out)

	_, err = run(t, "1/2\nbad\n", "sum")
	require.ErrorIs(t, err, ratio.ErrFmtInvalid)
	assert.Contains(t, err.Error(), "line 2")
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ratio.toml")
	require.Nil(t, os.WriteFile(file, []byte("[output]\nprecision = 2\n"), 0o644))

	out, err := run(t, "", "--config", file, "decimal", "2/3")
	require.NoError(t, err)
	assert.Equal(t, "0.67\n", out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "decimal", "2/3")
	assert.Error(t, err)

	_, err = run(t, "", "--filter", "(", "add", "1/2", "1/2")
	assert.Error(t, err)
}

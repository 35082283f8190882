// Package config reads the TOML configuration of the ratio command.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

const (
	DefaultPrecision = 10
	DefaultLogLevel  = 2
)

type Custom struct {
	Output struct {
		Precision int `toml:"precision" default:"10"`
	} `toml:"output"`
	Log struct {
		Level   int    `toml:"level" default:"2"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Custom {
	var c Custom
	c.Output.Precision = DefaultPrecision
	c.Log.Level = DefaultLogLevel
	return &c
}

// Initialize reads file on top of the defaults; keys missing from the file
// keep their default values.
func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	config := Default()
	err = toml.Unmarshal(f, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

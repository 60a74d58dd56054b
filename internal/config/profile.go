package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TableProfile defines the table defaults a simulation request inherits
// when it leaves blinds, antes or stacks unspecified.
type TableProfile struct {
	Table TableSettings `hcl:"table,block"`
}

// TableSettings contains the table-level defaults
type TableSettings struct {
	SmallBlind   int `hcl:"small_blind,optional"`
	BigBlind     int `hcl:"big_blind,optional"`
	MinBet       int `hcl:"min_bet,optional"`
	Ante         int `hcl:"ante,optional"`
	DefaultStack int `hcl:"default_stack,optional"`
}

// DefaultTableProfile returns the stakes the service has always dealt
func DefaultTableProfile() *TableProfile {
	return &TableProfile{
		Table: TableSettings{
			SmallBlind:   20,
			BigBlind:     40,
			MinBet:       40,
			DefaultStack: 50000,
		},
	}
}

// LoadTableProfile loads table defaults from an HCL file, falling back to
// the built-in profile when filename is empty or missing.
func LoadTableProfile(filename string) (*TableProfile, error) {
	if filename == "" {
		return DefaultTableProfile(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTableProfile(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	profile := DefaultTableProfile()
	if diags := gohcl.DecodeBody(file.Body, nil, profile); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}
	return profile, nil
}

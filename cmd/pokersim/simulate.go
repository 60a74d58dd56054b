package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pokersim-server/cmd/pokersim/shared"
	"pokersim-server/internal/config"
	"pokersim-server/internal/game"
)

// SimulateCmd runs one hand simulation from a JSON request file and prints
// the result snapshot.
type SimulateCmd struct {
	Request string `arg:"" optional:"" help:"Request JSON file ('-' or empty reads stdin)"`
	Profile string `help:"Table profile HCL file"`
	Events  bool   `help:"Include the audit event log in the output"`
}

// Run executes the simulation
func (c *SimulateCmd) Run(cli *CLI) error {
	logger := shared.SetupLogger(cli.Debug)

	var in io.Reader = os.Stdin
	if c.Request != "" && c.Request != "-" {
		f, err := os.Open(c.Request)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var req game.SimulationRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	profile, err := config.LoadTableProfile(c.Profile)
	if err != nil {
		return err
	}
	t := profile.Table
	if len(req.Blinds) == 0 && t.SmallBlind > 0 && t.BigBlind > 0 {
		req.Blinds = []float64{float64(t.SmallBlind), float64(t.BigBlind)}
	}

	result := game.Simulate(req.Config(), req.Actions, game.WithLogger(logger))
	if !c.Events {
		result.Events = nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

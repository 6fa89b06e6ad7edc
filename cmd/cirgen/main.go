// Copyright 2024 The sol2ink-go Authors
// This file is part of sol2ink-go.
//
// sol2ink-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sol2ink-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sol2ink-go. If not, see <http://www.gnu.org/licenses/>.

// Command cirgen is the thin external driver around the assembler
// library: it reads a JSON-encoded CIR fixture, calls AssembleContract
// or AssembleInterface, renders the result, and writes it out. None of
// this belongs in the assembler itself — spec.md places file I/O, CLI
// and logging outside the hard core — but a real deployment of this
// tool needs exactly this kind of driver, the way go-ethereum's
// cmd/abigen drives accounts/abi/bind.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sol2ink/assembler/assembler"
	"github.com/sol2ink/assembler/render"
)

func main() {
	app := &cli.App{
		Name:  "cirgen",
		Usage: "assemble a CIR fixture into ink! Dst source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Aliases:  []string{"i"},
				Usage:    "path to a JSON-encoded CIR fixture",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output path; defaults to stdout",
			},
			&cli.StringFlag{
				Name:    "version",
				Usage:   "override the signature banner's version string",
				EnvVars: []string{"PKG_VERSION"},
				Value:   assembler.Version,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log each assembly step at debug level",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("cirgen failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	in, err := os.Open(c.String("in"))
	if err != nil {
		return fmt.Errorf("cirgen: opening fixture: %w", err)
	}
	defer in.Close()

	fx, err := decodeFixture(in)
	if err != nil {
		return err
	}
	logger.Debug("decoded fixture", "kind", fx.Kind)
	version := assembler.WithVersion(c.String("version"))

	var out string
	switch fx.Kind {
	case "contract":
		contract, err := fx.toContract()
		if err != nil {
			return err
		}
		stream, err := assembler.AssembleContract(contract, version)
		if err != nil {
			return fmt.Errorf("cirgen: assembling contract %q: %w", contract.Name, err)
		}
		logger.Debug("assembled contract", "name", contract.Name, "tokens", stream.Len())
		out = render.String(stream)
	case "interface":
		iface, err := fx.toInterface()
		if err != nil {
			return err
		}
		stream, err := assembler.AssembleInterface(iface, version)
		if err != nil {
			return fmt.Errorf("cirgen: assembling interface %q: %w", iface.Name, err)
		}
		logger.Debug("assembled interface", "name", iface.Name, "tokens", stream.Len())
		out = render.String(stream)
	default:
		return fmt.Errorf("cirgen: unknown fixture kind %q (want \"contract\" or \"interface\")", fx.Kind)
	}

	if dst := c.String("out"); dst != "" {
		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return fmt.Errorf("cirgen: writing output: %w", err)
		}
		logger.Info("wrote output", "path", dst)
		return nil
	}
	_, err = fmt.Fprint(os.Stdout, out)
	return err
}

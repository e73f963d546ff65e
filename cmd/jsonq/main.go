// Package main is jsonq, a command line tool that quotes and unquotes JSON
// strings and shows how the raw and settable string elements read and
// serialize a given input.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"

	"jsonq.mleku.dev/chk"
	"jsonq.mleku.dev/config"
	"jsonq.mleku.dev/log"
	"jsonq.mleku.dev/lol"
)

func main() {
	cfg, err := config.New()
	if chk.F(err) {
		config.PrintUsage(&config.C{}, os.Stderr)
		os.Exit(1)
	}
	var a Args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	lol.SetLogLevel(cfg.LogLevel)
	if a.Delimiter != "" {
		cfg.Delimiter = a.Delimiter
	}
	if a.Hex {
		cfg.Hex = true
	}
	if err = cfg.Validate(); chk.F(err) {
		os.Exit(1)
	}
	log.D.S(cfg)
	if cfg.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."),
			profile.Quiet).Stop()
	}
	if err = Run(&a, cfg, os.Stdin, os.Stdout); chk.E(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

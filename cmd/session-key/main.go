// Package main prints a fresh browser cookie signing key.
package main

import (
	"flag"
	"os"

	"github.com/lceo-rwanda/portal/internal/platform/config"
	"github.com/lceo-rwanda/portal/internal/tools/sessionkey"
)

func main() {
	cfg, err := sessionkey.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sessionkey.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate key: %v", err)
	}
}

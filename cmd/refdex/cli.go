package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/refdex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Scanner   refdex.DocumentScanner
	Manifests refdex.ManifestStore
	Pages     refdex.PageLister
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" help:"Scan a directory of reference HTML pages and write a manifest"`
	Query QueryCmd `cmd:"" help:"Search a manifest for a substring"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	DocRoot string `arg:"" help:"Directory of reference HTML pages (scanned non-recursively)"`
	Out     string `arg:"" help:"Output manifest JSON path"`
	Verbose bool   `short:"v" help:"Log each page scan"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Manifest string `arg:"" help:"Manifest JSON path"`
	Needle   string `arg:"" help:"Substring to search in anchors, file names, and titles"`
	Limit    int    `short:"l" default:"25" help:"Maximum rows to print"`
}

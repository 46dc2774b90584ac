package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagemeta"
)

// Dependencies holds the services and streams commands run against.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Extractor  pagemeta.Extractor
	NewFetcher func(rps float64) pagemeta.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction details to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract metadata from an HTML file (or stdin)"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch URLs and extract metadata from each"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path    string `arg:"" optional:"" default:"-" help:"HTML file path, or - for stdin"`
	BaseURL string `short:"b" name:"base-url" help:"Base URL for resolving relative URLs"`
	Pretty  bool   `short:"p" help:"Indent the JSON output"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs   []string `arg:"" help:"Page URLs to fetch and extract"`
	Rate   float64  `short:"r" default:"2" help:"Maximum requests per second"`
	Pretty bool     `short:"p" help:"Indent the JSON output"`
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	pmhttp "github.com/fwojciec/pagemeta/http"
	pmslog "github.com/fwojciec/pagemeta/slog"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Extract structured metadata (Open Graph, JSON-LD, microdata, microformats2, RDFa, ...) from HTML."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemeta --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var extractor pagemeta.Extractor = goquery.NewExtractor()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		extractor = pmslog.NewLoggingExtractor(extractor, logger)
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: extractor,
		NewFetcher: func(rps float64) pagemeta.Fetcher {
			return pmhttp.NewFetcher(pmhttp.WithRateLimit(rps))
		},
	}

	return kongCtx.Run(deps)
}

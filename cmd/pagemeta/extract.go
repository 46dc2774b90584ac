package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fwojciec/pagemeta"
)

// Run executes the extract command: read HTML from a file or stdin,
// extract all formats, print the result as JSON.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var raw []byte
	var err error
	if c.Path == "-" {
		raw, err = io.ReadAll(deps.Stdin)
	} else {
		raw, err = os.ReadFile(c.Path)
	}
	if err != nil {
		return pagemeta.Errorf(pagemeta.EINVALID, "failed to read input: %v", err)
	}

	res, err := deps.Extractor.ExtractAll(string(raw), c.BaseURL)
	if err != nil {
		return err
	}

	return writeJSON(deps.Stdout, res, c.Pretty)
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

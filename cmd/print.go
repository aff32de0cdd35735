package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundcalc"
)

// printMarkdown renders md for the terminal, in the configured style.
func printMarkdown(md string) {
	if config.Style == "plain" {
		fmt.Fprint(stdout, md)
		return
	}
	style := glamour.WithAutoStyle()
	if config.Style != "" && config.Style != "auto" {
		style = glamour.WithStandardStyle(config.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		logger.Debug().Err(err).Msg("cannot create markdown renderer, printing raw markdown")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug().Err(err).Msg("cannot render markdown, printing raw markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "%s\n", data)
	return err
}

// decodeFile decodes into v the record at path in the JSON file name, "-"
// being stdin.
func decodeFile(name, path string, v any) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	logger.Debug().Str("file", name).Str("path", path).Msg("decoding snapshot")
	return fundcalc.DecodeSnapshot(r, path, v)
}

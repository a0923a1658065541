package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/coffeeline/format"
	"github.com/dhamidi/coffeeline/importer"
	"github.com/dhamidi/coffeeline/importer/coffeescript"
)

type parseOptions struct {
	format       string
	language     string
	noDirectives bool
	noCleanup    bool
	tabWidth     int
}

func newParseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the outline of a source file (stdin when no file or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "-"
			if len(args) == 1 {
				filename = args[0]
			}
			if !cmd.Flags().Changed("tab-width") {
				opts.tabWidth = 0
			}
			if !cmd.Flags().Changed("no-directives") {
				opts.noDirectives = !cfg.Import.Directives
			}
			if !cmd.Flags().Changed("no-cleanup") {
				opts.noCleanup = !cfg.Import.Cleanup
			}
			return runParse(cmd.OutOrStdout(), cmd.InOrStdin(), filename, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or lines")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "",
		fmt.Sprintf("source language, one of %s (default: by extension, coffeescript for stdin)",
			strings.Join(importer.Languages(), ", ")))
	cmd.Flags().BoolVar(&opts.noDirectives, "no-directives", false, "do not write @others and << >> lines into parent bodies")
	cmd.Flags().BoolVar(&opts.noCleanup, "no-cleanup", false, "keep empty nodes and headline whitespace")
	cmd.Flags().IntVar(&opts.tabWidth, "tab-width", importer.DefaultTabWidth, "columns per tab")

	return cmd
}

func runParse(w io.Writer, stdin io.Reader, filename string, opts parseOptions) error {
	var data []byte
	var err error
	if filename == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	lang, err := languageFor(filename, opts)
	if err != nil {
		return err
	}

	encoder, err := format.New(opts.format, w)
	if err != nil {
		return err
	}

	importOpts := []importer.Option{importer.WithDirectives(!opts.noDirectives)}
	if filename != "-" {
		importOpts = append(importOpts, importer.WithTitle(filepath.Base(filename)))
	}
	if opts.noCleanup {
		importOpts = append(importOpts, importer.WithoutCleanup())
	}

	root := importer.Import(lang, string(data), importOpts...)
	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func languageFor(filename string, opts parseOptions) (importer.Language, error) {
	var lang importer.Language
	var ok bool
	switch {
	case opts.language != "":
		lang, ok = importer.Lookup(opts.language)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", opts.language)
		}
	case filename == "-":
		lang, ok = importer.Lookup(coffeescript.Name)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", coffeescript.Name)
		}
	default:
		lang, ok = importer.ForFile(filename)
		if !ok {
			return nil, fmt.Errorf("no language for %s", filename)
		}
	}

	if opts.tabWidth > 0 && opts.tabWidth != lang.TabWidth() && lang.Name() == coffeescript.Name {
		lang = coffeescript.New(opts.tabWidth)
	}
	return lang, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/coffeeline/codebase"
)

func newScanCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Outline every known source file below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := codebase.New(args[0], codebase.WithImportOptions(cfg.ImportOptions()...))
			if !watch {
				return runScan(cmd.OutOrStdout(), c)
			}
			return runWatch(c)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling for changes until interrupted")

	return cmd
}

func runScan(w io.Writer, c *codebase.Codebase) error {
	info, err := os.Stat(c.RootDir())
	if err != nil {
		return fmt.Errorf("stat %s: %w", c.RootDir(), err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan %s: not a directory", c.RootDir())
	}
	if err := c.ScanAll(); err != nil {
		return fmt.Errorf("scan %s: %w", c.RootDir(), err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	total := 0
	for _, path := range c.Paths() {
		file := c.GetFile(path)
		nodes := len(file.Outline.Subtree())
		total += nodes
		fmt.Fprintf(tw, "%s\t%s\t%d\n", path, file.Language, nodes)
	}
	fmt.Fprintf(tw, "total\t\t%d\n", total)
	return tw.Flush()
}

func runWatch(c *codebase.Codebase) error {
	interval, err := cfg.PollInterval()
	if err != nil {
		return err
	}
	w := codebase.NewFileWatcher(c, interval)
	w.Start()
	defer w.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}

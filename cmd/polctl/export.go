package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/polkit/pkg/pol"
)

var (
	exportScope    string
	exportEncoding string
	exportBOM      bool
	exportHiveRoot string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportScope, "scope", "", "Export the User or Machine store instead of a file")
	cmd.Flags().StringVar(&exportEncoding, "encoding", "UTF-8", "Output encoding: UTF-8 or UTF-16LE")
	cmd.Flags().BoolVar(&exportBOM, "bom", false, "Write a byte order mark (UTF-16LE only)")
	cmd.Flags().StringVar(&exportHiveRoot, "hive-root", "", "Root prepended to every key (default by scope)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file|-> [out.reg]",
		Short: "Export a policy file as .reg text",
		Long: `The export command renders a Registry.pol file as a .reg file that regedit
can import. Output goes to stdout unless a destination is given. Pass "-" as
the source together with --scope to export a policy store.

Example:
  polctl export Registry.pol
  polctl export Registry.pol policy.reg --encoding UTF-16LE --bom
  polctl export - --scope User user.reg`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	src := args[:1]
	if args[0] == "-" {
		src = nil
	}
	f, label, err := loadSource(src, exportScope)
	if err != nil {
		return err
	}

	opts := pol.ExportOptions{
		HiveRoot:       exportHiveRoot,
		OutputEncoding: exportEncoding,
		WithBOM:        exportBOM,
	}
	if opts.HiveRoot == "" {
		opts.HiveRoot = defaultHiveRoot(src)
	}
	if len(args) == 2 {
		if err := pol.WriteReg(args[1], f, opts); err != nil {
			return fmt.Errorf("failed to export %s to %s: %w", label, args[1], err)
		}
		printInfo("Exported %d records from %s to %s\n", len(f.Policies), label, args[1])
		return nil
	}

	out, err := pol.ExportReg(f, opts)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", label, err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

// defaultHiveRoot picks the root from config, or from the scope when a store
// is exported.
func defaultHiveRoot(src []string) string {
	if cfg.HiveRoot != "" {
		return cfg.HiveRoot
	}
	if len(src) > 0 {
		return pol.HKEYLocalMachine
	}
	scope := exportScope
	if scope == "" {
		scope = cfg.DefaultScope
	}
	if strings.EqualFold(scope, string(pol.User)) {
		return pol.HKEYCurrentUser
	}
	return pol.HKEYLocalMachine
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/polkit/pkg/types"
)

var (
	dumpScope   string
	dumpKey     string
	dumpCompact bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpScope, "scope", "", "Dump the User or Machine store instead of a file")
	cmd.Flags().StringVar(&dumpKey, "key", "", "Dump only records under this key")
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "One line per record")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "List every record in a policy file",
		Long: `The dump command lists the records of a Registry.pol file in file order.
Without a file it reads the store selected by --scope (or default_scope).

Example:
  polctl dump Registry.pol
  polctl dump --scope Machine --root C:\Windows\System32\GroupPolicy
  polctl dump Registry.pol --key "Software\Policies\Microsoft" --compact
  polctl dump Registry.pol --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	f, label, err := loadSource(args, dumpScope)
	if err != nil {
		return err
	}

	views := make([]recordView, 0, len(f.Policies))
	for _, p := range f.Policies {
		if dumpKey != "" && !underKey(p.Path(), dumpKey) {
			continue
		}
		views = append(views, viewOf(p))
	}

	if ok, err := printStructured(map[string]interface{}{
		"file":    label,
		"version": f.Version,
		"records": views,
	}); ok {
		return err
	}

	if !dumpCompact {
		printInfo("Policy file: %s (version %d, %d records)\n\n", label, f.Version, len(f.Policies))
	}
	lastKey, started := "", false
	for _, p := range f.Policies {
		if dumpKey != "" && !underKey(p.Path(), dumpKey) {
			continue
		}
		line := fmt.Sprintf("%s = %s %s", displayName(p.ValueName()), p.Type, formatValue(p))
		if d, _ := p.Directive(); d != types.DirectiveSet {
			line += "  ; " + d.String()
		}
		if dumpCompact {
			printInfo("%s\\%s\n", p.Path(), line)
			continue
		}
		if !started || !strings.EqualFold(p.Path(), lastKey) {
			if started {
				printInfo("\n")
			}
			printInfo("[%s]\n", p.Path())
			lastKey, started = p.Path(), true
		}
		printInfo("  %s\n", line)
	}
	return nil
}

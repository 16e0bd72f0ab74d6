package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/polkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that policy files decode cleanly",
		Long: `The validate command decodes each file completely and reports OK or the
kind of failure: signature (not a policy file), format (malformed records),
io or not-found. It exits non-zero when any file fails.

Example:
  polctl validate Registry.pol
  polctl validate Machine/Registry.pol User/Registry.pol --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

// validation is the result for one file.
type validation struct {
	File    string `json:"file" yaml:"file"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Records int    `json:"records" yaml:"records"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func validateFile(path string) validation {
	f, err := newLoader().Load(path)
	if err != nil {
		v := validation{File: path, Kind: "unknown", Error: err.Error()}
		var perr *types.Error
		if errors.As(err, &perr) {
			v.Kind = perr.Kind.String()
		}
		return v
	}
	return validation{File: path, Valid: true, Records: len(f.Policies)}
}

func runValidate(args []string) error {
	results := make([]validation, 0, len(args))
	failed := 0
	for _, path := range args {
		printVerbose("Validating: %s\n", path)
		v := validateFile(path)
		if !v.Valid {
			failed++
		}
		results = append(results, v)
	}

	if ok, err := printStructured(results); ok {
		if err != nil {
			return err
		}
	} else {
		for _, v := range results {
			if v.Valid {
				printInfo("OK    %s (%d records)\n", v.File, v.Records)
			} else {
				printInfo("FAIL  %s [%s] %s\n", v.File, v.Kind, v.Error)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}

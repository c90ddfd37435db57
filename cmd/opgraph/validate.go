package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomlx/opgraph/opdefs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// ValidateHandler loads the given schema files and directories into a new registry, and reports the number
// of ops defined, or the first error.
func ValidateHandler(cmd *cobra.Command, args []string) error {
	reg := opdefs.New()
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "can't validate %q", path)
		}
		numOps := reg.Len()
		if info.IsDir() {
			err = reg.LoadDir(cmd.Context(), path)
		} else {
			if !strings.HasSuffix(path, opdefs.SchemaExtension) {
				klog.Warningf("%q doesn't have the %s extension, validating it anyway", path, opdefs.SchemaExtension)
			}
			err = reg.LoadFile(path)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ops\n", path, reg.Len()-numOps)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %d ops validated\n", reg.Len())
	return nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH...",
		Short: "Validate op schema files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ValidateHandler,
	}
}

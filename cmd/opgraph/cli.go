package main

import (
	"flag"

	"github.com/gomlx/opgraph/opdefs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const schemaFlag = "schema"

// NewCLI creates the root command with all its sub-commands.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "opgraph",
		Short:         "Inspect and validate graph op schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().String(schemaFlag, "",
		"Directory with the op schema files (*.hcl) to use, instead of the ones embedded in the program.")

	// klog flags (-v, --logtostderr, etc.)
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(newListCmd(), newDescribeCmd(), newValidateCmd())
	return rootCmd
}

// loadRegistry returns the registry selected by the --schema flag.
func loadRegistry(cmd *cobra.Command) (*opdefs.Registry, error) {
	dir, err := cmd.Flags().GetString(schemaFlag)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if dir == "" {
		return opdefs.Default()
	}
	reg := opdefs.New()
	if err = reg.LoadDir(cmd.Context(), dir); err != nil {
		return nil, err
	}
	if reg.Len() == 0 {
		return nil, errors.Errorf("no op schemas found in %q", dir)
	}
	return reg, nil
}

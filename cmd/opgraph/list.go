package main

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ListHandler lists the registered ops whose names start with the optional prefix (case-insensitive).
func ListHandler(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	var data [][]string
	for _, def := range reg.All() {
		if len(args) == 0 || strings.HasPrefix(strings.ToLower(def.Name), strings.ToLower(args[0])) {
			data = append(data, []string{
				def.Name,
				strconv.Itoa(len(def.Inputs)),
				strconv.Itoa(len(def.Outputs)),
				strconv.Itoa(len(def.Attrs)),
				def.Summary,
			})
		}
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "INPUTS", "OUTPUTS", "ATTRS", "SUMMARY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [prefix]",
		Aliases: []string{"ls"},
		Short:   "List the registered ops",
		Args:    cobra.MaximumNArgs(1),
		RunE:    ListHandler,
	}
}

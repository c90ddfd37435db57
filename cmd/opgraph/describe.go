package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph/opdefs"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DescribeHandler prints the definition of one op: its inputs, outputs and attributes.
func DescribeHandler(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	def := reg.Lookup(args[0])
	if def == nil {
		return errors.Errorf("unknown op %q, see \"opgraph list\" for the available ops", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", def.Name, def.Summary)
	if def.Description != "" {
		fmt.Fprintf(out, "\n%s\n", def.Description)
	}
	if def.Stateful {
		fmt.Fprintln(out, "\nStateful: yes")
	}

	if len(def.Inputs) > 0 {
		fmt.Fprintln(out, "\nInputs:")
		writeArgs(out, def.Inputs)
	}
	if len(def.Outputs) > 0 {
		fmt.Fprintln(out, "\nOutputs:")
		writeArgs(out, def.Outputs)
	}
	if len(def.Attrs) > 0 {
		fmt.Fprintln(out, "\nAttributes:")
		var data [][]string
		for _, attr := range def.Attrs {
			defaultValue := "(required)"
			switch {
			case def.IsInferredAttr(attr.Name):
				defaultValue = "(inferred)"
			case attr.HasDefault:
				defaultValue = opdefs.FormatAttrValue(attr.Kind, attr.Default)
			}
			var constraints []string
			if len(attr.AllowedValues) > 0 {
				constraints = append(constraints, "in "+strings.Join(attr.AllowedValues, ","))
			}
			if attr.Minimum != nil {
				constraints = append(constraints, ">= "+strconv.FormatInt(*attr.Minimum, 10))
			}
			data = append(data, []string{attr.Name, attr.Kind.String(), defaultValue,
				strings.Join(constraints, "; "), attr.Description})
		}
		writeTable(out, []string{"NAME", "KIND", "DEFAULT", "CONSTRAINTS", "DESCRIPTION"}, data)
	}
	return nil
}

func writeArgs(out io.Writer, args []*opdefs.ArgDef) {
	var data [][]string
	for _, arg := range args {
		data = append(data, []string{arg.Name, argTypeString(arg), arg.Description})
	}
	writeTable(out, []string{"NAME", "TYPE", "DESCRIPTION"}, data)
}

func writeTable(out io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

// argTypeString describes the dtype of an argument, e.g. "float32", "T", "N * T" or "list(Tin)".
func argTypeString(arg *opdefs.ArgDef) string {
	if arg.TypeListAttr != "" {
		return "list(" + arg.TypeListAttr + ")"
	}
	dtype := arg.TypeAttr
	if arg.Type != dtypes.InvalidDType {
		dtype = shapes.DTypeName(arg.Type)
	}
	if arg.NumberAttr != "" {
		return arg.NumberAttr + " * " + dtype
	}
	return dtype
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "describe OP",
		Aliases: []string{"show"},
		Short:   "Describe the inputs, outputs and attributes of an op",
		Args:    cobra.ExactArgs(1),
		RunE:    DescribeHandler,
	}
}

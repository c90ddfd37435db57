package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/gomlx/opgraph/internal/utils"
	"github.com/gomlx/opgraph/opdefs"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// OpInfo holds what the template needs to write the function of one operation.
type OpInfo struct {
	Name     string
	Comments []string

	Inputs        []*ParamInfo
	RequiredAttrs []*ParamInfo
	OptionalAttrs []*ParamInfo
	Outputs       []*ParamInfo

	// HasListOutputs indicates the outputs are unpacked with makeOutputList, and their indices are only known
	// after the operation is built.
	HasListOutputs bool
}

// ParamInfo holds one input, attribute or output of an operation.
type ParamInfo struct {
	// Name in the schema, GoName of the parameter or result, GoType of the parameter or result.
	Name, GoName, GoType string

	// SetterName is the name of the function that sets an optional attribute.
	SetterName string

	// Comments of the setter of an optional attribute.
	Comments []string

	IsList bool
	Index  int
	Last   bool
}

// reservedNames can't be used for parameters or results of the generated functions, since they are used
// in the body of the functions.
var reservedNames = utils.SetWith(
	"scope", "optional", "opt", "op", "err", "attrs", "idx",
	"opgraph", "dtypes", "shapes", "tensors",
	// Predeclared identifiers.
	"any", "bool", "byte", "comparable", "complex64", "complex128", "error", "float32", "float64",
	"int", "int8", "int16", "int32", "int64", "rune", "string",
	"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"true", "false", "iota", "nil",
	"append", "cap", "clear", "close", "complex", "copy", "delete", "imag", "len", "make",
	"max", "min", "new", "panic", "print", "println", "real", "recover",
)

// goParamName converts a schema name to a Go parameter name not yet in used.
func goParamName(name string, used utils.Set[string]) string {
	goName := utils.NormalizeIdentifier(utils.ToCamelCase(name, false))
	for token.IsKeyword(goName) || reservedNames.Has(goName) || used.Has(goName) {
		goName += "_"
	}
	used.Insert(goName)
	return goName
}

// attrGoType returns the Go type of the parameters for the given attribute kind.
func attrGoType(kind opdefs.AttrKind) string {
	var elem string
	switch kind.Elem() {
	case opdefs.AttrString:
		elem = "string"
	case opdefs.AttrInt:
		elem = "int64"
	case opdefs.AttrFloat:
		elem = "float32"
	case opdefs.AttrBool:
		elem = "bool"
	case opdefs.AttrType:
		elem = "dtypes.DType"
	case opdefs.AttrShape:
		elem = "shapes.Shape"
	case opdefs.AttrTensor:
		elem = "*tensors.Tensor"
	default:
		klog.Fatalf("unsupported attribute kind %s", kind)
	}
	if kind.IsList() {
		return "[]" + elem
	}
	return elem
}

// lowerFirst lower-cases the first letter of a sentence, unless it's part of an acronym (e.g. "LSTM").
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size == len(s) {
		return s
	}
	next, _ := utf8.DecodeRuneInString(s[size:])
	if unicode.IsUpper(next) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// oneLine joins the lines and spaces of a description in a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func newOpInfo(def *opdefs.OpDef) *OpInfo {
	info := &OpInfo{Name: def.Name}
	used := utils.MakeSet[string]()
	for _, input := range def.Inputs {
		p := &ParamInfo{Name: input.Name, GoName: goParamName(input.Name, used), GoType: "opgraph.Output", IsList: input.IsList()}
		if p.IsList {
			p.GoType = "[]opgraph.Output"
		}
		info.Inputs = append(info.Inputs, p)
	}
	for _, attr := range def.RequiredAttrs() {
		info.RequiredAttrs = append(info.RequiredAttrs,
			&ParamInfo{Name: attr.Name, GoName: goParamName(attr.Name, used), GoType: attrGoType(attr.Kind)})
	}
	for _, attr := range def.OptionalAttrs() {
		p := &ParamInfo{
			Name:       attr.Name,
			GoType:     attrGoType(attr.Kind),
			SetterName: def.Name + utils.NormalizeIdentifier(utils.ToCamelCase(attr.Name, true)),
		}
		p.Comments = []string{fmt.Sprintf("%s sets the optional %s attribute to value.", p.SetterName, attr.Name), ""}
		if attr.Description != "" {
			p.Comments = append(p.Comments, "value: "+oneLine(attr.Description))
		}
		p.Comments = append(p.Comments, "If not specified, defaults to "+opdefs.FormatAttrValue(attr.Kind, attr.Default))
		info.OptionalAttrs = append(info.OptionalAttrs, p)
	}
	for ii, output := range def.Outputs {
		p := &ParamInfo{Name: output.Name, GoName: goParamName(output.Name, used), GoType: "opgraph.Output",
			IsList: output.IsList(), Index: ii, Last: ii == len(def.Outputs)-1}
		if p.IsList {
			p.GoType = "[]opgraph.Output"
			info.HasListOutputs = true
		}
		info.Outputs = append(info.Outputs, p)
	}
	info.Comments = opComments(def)
	return info
}

// opComments returns the lines of the documentation of the generated function.
func opComments(def *opdefs.OpDef) []string {
	summary := oneLine(def.Summary)
	if summary == "" {
		summary = fmt.Sprintf("Adds a %s operation to the graph.", def.Name)
	}
	lines := []string{def.Name + " " + lowerFirst(summary)}
	if def.Description != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(def.Description, "\n")...)
	}

	var args []string
	for _, input := range def.Inputs {
		if input.Description != "" {
			args = append(args, fmt.Sprintf("  - %s: %s", input.Name, oneLine(input.Description)))
		}
	}
	for _, attr := range def.RequiredAttrs() {
		if attr.Description != "" {
			args = append(args, fmt.Sprintf("  - %s: %s", attr.Name, oneLine(attr.Description)))
		}
	}
	if len(args) > 0 {
		lines = append(lines, "", "Arguments:")
		lines = append(lines, args...)
	}

	var results []string
	for _, output := range def.Outputs {
		if output.Description != "" {
			results = append(results, fmt.Sprintf("  - %s: %s", output.Name, oneLine(output.Description)))
		}
	}
	if len(results) > 0 {
		lines = append(lines, "", "Returns:")
		lines = append(lines, results...)
	}
	for ii, line := range lines {
		lines[ii] = strings.TrimRight(line, " \t")
	}
	return lines
}

// handWrittenOps are implemented in the ops package by hand, since their attributes are derived from Go values.
var handWrittenOps = utils.SetWith("Const", "Placeholder")

// fileInfo is the data given to the template.
type fileInfo struct {
	Ops                                []*OpInfo
	UsesDTypes, UsesShapes, UsesTensor bool
}

const genOpsFile = "gen_ops.go"

var genOpsTemplate = template.Must(template.New(genOpsFile).Parse(`/***** File generated by ./internal/cmd/ops_generator, based on the op schemas in opdefs/schemas. Don't edit it directly. *****/

package ops

import (
{{- if .UsesDTypes}}
	"github.com/gomlx/gopjrt/dtypes"
{{- end}}
	"github.com/gomlx/opgraph"
{{- if .UsesShapes}}
	"github.com/gomlx/opgraph/types/shapes"
{{- end}}
{{- if .UsesTensor}}
	"github.com/gomlx/opgraph/types/tensors"
{{- end}}
)

{{- range .Ops}}
{{- $op := .}}
{{- if .OptionalAttrs}}

// {{.Name}}Attr is an optional argument to {{.Name}}.
type {{.Name}}Attr func(optionalAttr)
{{- range .OptionalAttrs}}

{{range .Comments}}//{{if .}} {{.}}{{end}}
{{end -}}
func {{.SetterName}}(value {{.GoType}}) {{$op.Name}}Attr {
	return func(m optionalAttr) {
		m["{{.Name}}"] = value
	}
}
{{- end}}
{{- end}}

{{range .Comments}}//{{if .}} {{.}}{{end}}
{{end -}}
func {{.Name}}(scope *Scope
{{- range .Inputs}}, {{.GoName}} {{.GoType}}{{end}}
{{- range .RequiredAttrs}}, {{.GoName}} {{.GoType}}{{end}}
{{- if .OptionalAttrs}}, optional ...{{.Name}}Attr{{end}}) (
{{- if .Outputs}}
{{- range .Outputs}}{{.GoName}} {{.GoType}}, {{end}}err error
{{- else}}op *opgraph.Operation, err error
{{- end}}) {
{{- if or .RequiredAttrs .OptionalAttrs}}
	attrs := map[string]any{
{{- range $ii, $attr := .RequiredAttrs}}{{if $ii}}, {{end}}"{{.Name}}": {{.GoName}}{{end -}}
}
{{- if .OptionalAttrs}}
	for _, opt := range optional {
		opt(attrs)
	}
{{- end}}
{{- end}}
{{- if .Outputs}}
	op, err := Build(scope, "{{.Name}}", []opgraph.Input{
{{- range $ii, $input := .Inputs}}{{if $ii}}, {{end}}{{if .IsList}}opgraph.OutputList({{.GoName}}){{else}}{{.GoName}}{{end}}{{end -}}
}, {{if or .RequiredAttrs .OptionalAttrs}}attrs{{else}}nil{{end}})
	if err != nil {
		return
	}
{{- if .HasListOutputs}}
	var idx int
{{- range .Outputs}}
{{- if .IsList}}
	if {{.GoName}}, {{if .Last}}_{{else}}idx{{end}}, err = makeOutputList(op, idx, "{{.Name}}"); err != nil {
		return
	}
{{- else}}
	{{.GoName}} = op.Output(idx)
{{- if not .Last}}
	idx++
{{- end}}
{{- end}}
{{- end}}
{{- else}}
{{- range .Outputs}}
	{{.GoName}} = op.Output({{.Index}})
{{- end}}
{{- end}}
	return
{{- else}}
	return Build(scope, "{{.Name}}", []opgraph.Input{
{{- range $ii, $input := .Inputs}}{{if $ii}}, {{end}}{{if .IsList}}opgraph.OutputList({{.GoName}}){{else}}{{.GoName}}{{end}}{{end -}}
}, {{if or .RequiredAttrs .OptionalAttrs}}attrs{{else}}nil{{end}})
{{- end}}
}
{{- end}}
`))

// GenerateOps writes the Go source with one function per operation registered in reg.
// The source is formatted with go/format.
func GenerateOps(w io.Writer, reg *opdefs.Registry) error {
	data := &fileInfo{}
	for _, def := range reg.All() {
		if handWrittenOps.Has(def.Name) {
			continue
		}
		info := newOpInfo(def)
		data.Ops = append(data.Ops, info)
		for _, p := range append(info.RequiredAttrs, info.OptionalAttrs...) {
			data.UsesDTypes = data.UsesDTypes || strings.Contains(p.GoType, "dtypes.")
			data.UsesShapes = data.UsesShapes || strings.Contains(p.GoType, "shapes.")
			data.UsesTensor = data.UsesTensor || strings.Contains(p.GoType, "tensors.")
		}
		klog.V(2).Infof("ops_generator: %s with %d inputs, %d attrs and %d outputs",
			def.Name, len(def.Inputs), len(def.Attrs), len(def.Outputs))
	}
	var buf bytes.Buffer
	if err := genOpsTemplate.Execute(&buf, data); err != nil {
		return errors.Wrap(err, "failed to execute template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrapf(err, "failed to format generated code:\n%s", buf.String())
	}
	_, err = w.Write(src)
	return errors.WithStack(err)
}

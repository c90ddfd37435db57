/***** File generated by ./internal/cmd/ops_generator, based on the op schemas in opdefs/schemas. Don't edit it directly. *****/

package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opgraph"
	"github.com/gomlx/opgraph/types/shapes"
	"github.com/gomlx/opgraph/types/tensors"
)

// AbortAttr is an optional argument to Abort.
type AbortAttr func(optionalAttr)

// AbortErrorMsg sets the optional error_msg attribute to value.
//
// value: A string which is the message associated with the exception.
// If not specified, defaults to ""
func AbortErrorMsg(value string) AbortAttr {
	return func(m optionalAttr) {
		m["error_msg"] = value
	}
}

// AbortExitWithoutError sets the optional exit_without_error attribute to value.
//
// If not specified, defaults to false
func AbortExitWithoutError(value bool) AbortAttr {
	return func(m optionalAttr) {
		m["exit_without_error"] = value
	}
}

// Abort raises an exception to abort the process when called.
//
// If exit_without_error is true, the process will exit normally, otherwise it will exit with a
// SIGABORT signal.
func Abort(scope *Scope, optional ...AbortAttr) (op *opgraph.Operation, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	return Build(scope, "Abort", []opgraph.Input{}, attrs)
}

// Abs computes the absolute value of a tensor.
func Abs(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Abs", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Add returns x + y element-wise.
//
// Both inputs must have the same dtype. Broadcasting of the shapes is done by the executor.
func Add(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Add", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// AddN adds all input tensors element-wise.
//
// Arguments:
//   - inputs: Tensors to be added, all of the same shape and dtype.
func AddN(scope *Scope, inputs []opgraph.Output) (sum opgraph.Output, err error) {
	op, err := Build(scope, "AddN", []opgraph.Input{opgraph.OutputList(inputs)}, nil)
	if err != nil {
		return
	}
	sum = op.Output(0)
	return
}

// ArgMaxAttr is an optional argument to ArgMax.
type ArgMaxAttr func(optionalAttr)

// ArgMaxOutputType sets the optional output_type attribute to value.
//
// If not specified, defaults to int64
func ArgMaxOutputType(value dtypes.DType) ArgMaxAttr {
	return func(m optionalAttr) {
		m["output_type"] = value
	}
}

// ArgMax returns the index with the largest value across dimensions of a tensor.
//
// Note that in case of ties the identity of the return value is not guaranteed.
//
// Arguments:
//   - dimension: Describes which dimension of the input tensor to reduce across.
func ArgMax(scope *Scope, input opgraph.Output, dimension opgraph.Output, optional ...ArgMaxAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "ArgMax", []opgraph.Input{input, dimension}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ArgMinAttr is an optional argument to ArgMin.
type ArgMinAttr func(optionalAttr)

// ArgMinOutputType sets the optional output_type attribute to value.
//
// If not specified, defaults to int64
func ArgMinOutputType(value dtypes.DType) ArgMinAttr {
	return func(m optionalAttr) {
		m["output_type"] = value
	}
}

// ArgMin returns the index with the smallest value across dimensions of a tensor.
//
// Note that in case of ties the identity of the return value is not guaranteed.
//
// Arguments:
//   - dimension: Describes which dimension of the input tensor to reduce across.
func ArgMin(scope *Scope, input opgraph.Output, dimension opgraph.Output, optional ...ArgMinAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "ArgMin", []opgraph.Input{input, dimension}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// AssertAttr is an optional argument to Assert.
type AssertAttr func(optionalAttr)

// AssertSummarize sets the optional summarize attribute to value.
//
// value: Print this many entries of each tensor.
// If not specified, defaults to 3
func AssertSummarize(value int64) AssertAttr {
	return func(m optionalAttr) {
		m["summarize"] = value
	}
}

// Assert asserts that the given condition is true.
//
// If condition evaluates to false, print the list of tensors in data.
//
// Arguments:
//   - condition: The condition to evaluate.
//   - data: The tensors to print out when condition is false.
func Assert(scope *Scope, condition opgraph.Output, data []opgraph.Output, optional ...AssertAttr) (op *opgraph.Operation, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	return Build(scope, "Assert", []opgraph.Input{condition, opgraph.OutputList(data)}, attrs)
}

// AssignAttr is an optional argument to Assign.
type AssignAttr func(optionalAttr)

// AssignValidateShape sets the optional validate_shape attribute to value.
//
// value: If true, the operation will validate that the shape of value matches the shape of the Tensor being assigned to.
// If not specified, defaults to true
func AssignValidateShape(value bool) AssignAttr {
	return func(m optionalAttr) {
		m["validate_shape"] = value
	}
}

// AssignUseLocking sets the optional use_locking attribute to value.
//
// value: If true, the assignment will be protected by a lock.
// If not specified, defaults to true
func AssignUseLocking(value bool) AssignAttr {
	return func(m optionalAttr) {
		m["use_locking"] = value
	}
}

// Assign updates ref by assigning value to it.
//
// Arguments:
//   - ref: Should be from a Variable node. May be uninitialized.
//   - value: The value to be assigned to the variable.
//
// Returns:
//   - output_ref: Same as ref. Useful for chaining operations that need to use the reset value.
func Assign(scope *Scope, ref opgraph.Output, value opgraph.Output, optional ...AssignAttr) (outputRef opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Assign", []opgraph.Input{ref, value}, attrs)
	if err != nil {
		return
	}
	outputRef = op.Output(0)
	return
}

// AssignAddAttr is an optional argument to AssignAdd.
type AssignAddAttr func(optionalAttr)

// AssignAddUseLocking sets the optional use_locking attribute to value.
//
// value: If true, the addition will be protected by a lock.
// If not specified, defaults to false
func AssignAddUseLocking(value bool) AssignAddAttr {
	return func(m optionalAttr) {
		m["use_locking"] = value
	}
}

// AssignAdd updates ref by adding value to it.
//
// Arguments:
//   - ref: Should be from a Variable node.
func AssignAdd(scope *Scope, ref opgraph.Output, value opgraph.Output, optional ...AssignAddAttr) (outputRef opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "AssignAdd", []opgraph.Input{ref, value}, attrs)
	if err != nil {
		return
	}
	outputRef = op.Output(0)
	return
}

// AssignSubAttr is an optional argument to AssignSub.
type AssignSubAttr func(optionalAttr)

// AssignSubUseLocking sets the optional use_locking attribute to value.
//
// value: If true, the addition will be protected by a lock.
// If not specified, defaults to false
func AssignSubUseLocking(value bool) AssignSubAttr {
	return func(m optionalAttr) {
		m["use_locking"] = value
	}
}

// AssignSub updates ref by subtracting value from it.
//
// Arguments:
//   - ref: Should be from a Variable node.
func AssignSub(scope *Scope, ref opgraph.Output, value opgraph.Output, optional ...AssignSubAttr) (outputRef opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "AssignSub", []opgraph.Input{ref, value}, attrs)
	if err != nil {
		return
	}
	outputRef = op.Output(0)
	return
}

// Atan2 computes arctangent of y/x element-wise, respecting signs of the arguments.
func Atan2(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Atan2", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// AvgPoolAttr is an optional argument to AvgPool.
type AvgPoolAttr func(optionalAttr)

// AvgPoolDataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func AvgPoolDataFormat(value string) AvgPoolAttr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// AvgPool performs average pooling on the input.
//
// Each entry in output is the mean of the corresponding size ksize window in value.
//
// Arguments:
//   - value: 4-D with shape [batch, height, width, channels].
//   - padding: The type of padding algorithm to use.
//
// Returns:
//   - output: The average pooled output tensor.
func AvgPool(scope *Scope, value opgraph.Output, ksize []int64, strides []int64, padding string, optional ...AvgPoolAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"ksize": ksize, "strides": strides, "padding": padding}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "AvgPool", []opgraph.Input{value}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// BatchMatMulV2Attr is an optional argument to BatchMatMulV2.
type BatchMatMulV2Attr func(optionalAttr)

// BatchMatMulV2AdjX sets the optional adj_x attribute to value.
//
// value: If true, adjoint the slices of x.
// If not specified, defaults to false
func BatchMatMulV2AdjX(value bool) BatchMatMulV2Attr {
	return func(m optionalAttr) {
		m["adj_x"] = value
	}
}

// BatchMatMulV2AdjY sets the optional adj_y attribute to value.
//
// value: If true, adjoint the slices of y.
// If not specified, defaults to false
func BatchMatMulV2AdjY(value bool) BatchMatMulV2Attr {
	return func(m optionalAttr) {
		m["adj_y"] = value
	}
}

// BatchMatMulV2 multiplies slices of two tensors in batches.
//
// The batch dimensions are broadcast.
//
// Arguments:
//   - x: 2-D or higher with shape [..., r_x, c_x].
//   - y: 2-D or higher with shape [..., r_y, c_y].
//
// Returns:
//   - output: 3-D or higher with shape [..., r_o, c_o].
func BatchMatMulV2(scope *Scope, x opgraph.Output, y opgraph.Output, optional ...BatchMatMulV2Attr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "BatchMatMulV2", []opgraph.Input{x, y}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// BiasAddAttr is an optional argument to BiasAdd.
type BiasAddAttr func(optionalAttr)

// BiasAddDataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func BiasAddDataFormat(value string) BiasAddAttr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// BiasAdd adds bias to value.
//
// This is a special case of Add where bias is restricted to be 1-D. Broadcasting is supported, so
// value may have any number of dimensions.
//
// Arguments:
//   - value: Any number of dimensions.
//   - bias: 1-D with size the last dimension of value.
//
// Returns:
//   - output: Broadcasted sum of value and bias.
func BiasAdd(scope *Scope, value opgraph.Output, bias opgraph.Output, optional ...BiasAddAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "BiasAdd", []opgraph.Input{value, bias}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Bitcast bitcasts a tensor from one type to another without copying data.
func Bitcast(scope *Scope, input opgraph.Output, type_ dtypes.DType) (output opgraph.Output, err error) {
	attrs := map[string]any{"type": type_}
	op, err := Build(scope, "Bitcast", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// BitwiseAnd elementwise computes the bitwise AND of x and y.
func BitwiseAnd(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "BitwiseAnd", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// BitwiseOr elementwise computes the bitwise OR of x and y.
func BitwiseOr(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "BitwiseOr", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// BitwiseXor elementwise computes the bitwise XOR of x and y.
func BitwiseXor(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "BitwiseXor", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// BroadcastTo broadcasts an array for a compatible shape.
//
// Arguments:
//   - input: A Tensor to broadcast.
//   - shape: An 1-D int Tensor. The shape of the desired output.
//
// Returns:
//   - output: A Tensor.
func BroadcastTo(scope *Scope, input opgraph.Output, shape opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "BroadcastTo", []opgraph.Input{input, shape}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// CastAttr is an optional argument to Cast.
type CastAttr func(optionalAttr)

// CastTruncate sets the optional Truncate attribute to value.
//
// If not specified, defaults to false
func CastTruncate(value bool) CastAttr {
	return func(m optionalAttr) {
		m["Truncate"] = value
	}
}

// Cast casts x of type SrcT to y of DstT.
func Cast(scope *Scope, x opgraph.Output, dstT dtypes.DType, optional ...CastAttr) (y opgraph.Output, err error) {
	attrs := map[string]any{"DstT": dstT}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Cast", []opgraph.Input{x}, attrs)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Ceil returns element-wise smallest integer not less than x.
func Ceil(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Ceil", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// CheckNumerics checks a tensor for NaN and Inf values.
//
// Arguments:
//   - message: Prefix of the error message.
func CheckNumerics(scope *Scope, tensor opgraph.Output, message string) (output opgraph.Output, err error) {
	attrs := map[string]any{"message": message}
	op, err := Build(scope, "CheckNumerics", []opgraph.Input{tensor}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ClipByValue clips tensor values to a specified min and max.
//
// Arguments:
//   - t: A tensor.
//   - clip_value_min: The minimum value to clip to.
//   - clip_value_max: The maximum value to clip to.
//
// Returns:
//   - output: A clipped tensor with the same shape as input t.
func ClipByValue(scope *Scope, t opgraph.Output, clipValueMin opgraph.Output, clipValueMax opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "ClipByValue", []opgraph.Input{t, clipValueMin, clipValueMax}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ComplexAttr is an optional argument to Complex.
type ComplexAttr func(optionalAttr)

// ComplexTout sets the optional Tout attribute to value.
//
// If not specified, defaults to complex64
func ComplexTout(value dtypes.DType) ComplexAttr {
	return func(m optionalAttr) {
		m["Tout"] = value
	}
}

// Complex converts two real numbers to a complex number.
func Complex(scope *Scope, real_ opgraph.Output, imag_ opgraph.Output, optional ...ComplexAttr) (out opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Complex", []opgraph.Input{real_, imag_}, attrs)
	if err != nil {
		return
	}
	out = op.Output(0)
	return
}

// ConcatV2 concatenates tensors along one dimension.
//
// Arguments:
//   - values: List of N tensors to concatenate.
//   - axis: 0-D. The dimension along which to concatenate.
func ConcatV2(scope *Scope, values []opgraph.Output, axis opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "ConcatV2", []opgraph.Input{opgraph.OutputList(values), axis}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ControlTrigger does nothing. Serves as a control trigger for scheduling.
func ControlTrigger(scope *Scope) (op *opgraph.Operation, err error) {
	return Build(scope, "ControlTrigger", []opgraph.Input{}, nil)
}

// Conv2DAttr is an optional argument to Conv2D.
type Conv2DAttr func(optionalAttr)

// Conv2DUseCudnnOnGpu sets the optional use_cudnn_on_gpu attribute to value.
//
// If not specified, defaults to true
func Conv2DUseCudnnOnGpu(value bool) Conv2DAttr {
	return func(m optionalAttr) {
		m["use_cudnn_on_gpu"] = value
	}
}

// Conv2DExplicitPaddings sets the optional explicit_paddings attribute to value.
//
// value: If padding is EXPLICIT, the list of explicit padding amounts.
// If not specified, defaults to []
func Conv2DExplicitPaddings(value []int64) Conv2DAttr {
	return func(m optionalAttr) {
		m["explicit_paddings"] = value
	}
}

// Conv2DDataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func Conv2DDataFormat(value string) Conv2DAttr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// Conv2DDilations sets the optional dilations attribute to value.
//
// value: 1-D tensor of length 4. The dilation factor for each dimension of input.
// If not specified, defaults to [1, 1, 1, 1]
func Conv2DDilations(value []int64) Conv2DAttr {
	return func(m optionalAttr) {
		m["dilations"] = value
	}
}

// Conv2D computes a 2-D convolution given 4-D input and filter tensors.
//
// Given an input tensor of shape [batch, in_height, in_width, in_channels] and a filter / kernel
// tensor of shape [filter_height, filter_width, in_channels, out_channels], this op performs a
// convolution of the input with the filter.
//
// Arguments:
//   - input: A 4-D tensor. The dimension order is interpreted according to the value of data_format.
//   - filter: A 4-D tensor of shape [filter_height, filter_width, in_channels, out_channels].
//   - strides: 1-D tensor of length 4. The stride of the sliding window for each dimension of input.
//   - padding: The type of padding algorithm to use.
//
// Returns:
//   - output: A 4-D tensor. The dimension order is determined by the value of data_format.
func Conv2D(scope *Scope, input opgraph.Output, filter opgraph.Output, strides []int64, padding string, optional ...Conv2DAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"strides": strides, "padding": padding}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Conv2D", []opgraph.Input{input, filter}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Conv2DBackpropInputAttr is an optional argument to Conv2DBackpropInput.
type Conv2DBackpropInputAttr func(optionalAttr)

// Conv2DBackpropInputUseCudnnOnGpu sets the optional use_cudnn_on_gpu attribute to value.
//
// If not specified, defaults to true
func Conv2DBackpropInputUseCudnnOnGpu(value bool) Conv2DBackpropInputAttr {
	return func(m optionalAttr) {
		m["use_cudnn_on_gpu"] = value
	}
}

// Conv2DBackpropInputExplicitPaddings sets the optional explicit_paddings attribute to value.
//
// If not specified, defaults to []
func Conv2DBackpropInputExplicitPaddings(value []int64) Conv2DBackpropInputAttr {
	return func(m optionalAttr) {
		m["explicit_paddings"] = value
	}
}

// Conv2DBackpropInputDataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func Conv2DBackpropInputDataFormat(value string) Conv2DBackpropInputAttr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// Conv2DBackpropInputDilations sets the optional dilations attribute to value.
//
// If not specified, defaults to [1, 1, 1, 1]
func Conv2DBackpropInputDilations(value []int64) Conv2DBackpropInputAttr {
	return func(m optionalAttr) {
		m["dilations"] = value
	}
}

// Conv2DBackpropInput computes the gradients of convolution with respect to the input.
//
// Arguments:
//   - input_sizes: An integer vector representing the shape of input.
//   - out_backprop: Gradients with respect to the output of the convolution.
//
// Returns:
//   - output: Gradient with respect to the input of the convolution.
func Conv2DBackpropInput(scope *Scope, inputSizes opgraph.Output, filter opgraph.Output, outBackprop opgraph.Output, strides []int64, padding string, optional ...Conv2DBackpropInputAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"strides": strides, "padding": padding}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Conv2DBackpropInput", []opgraph.Input{inputSizes, filter, outBackprop}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Cos computes cosine of x element-wise.
func Cos(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Cos", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// CountUpTo increments ref until it reaches limit.
//
// Arguments:
//   - ref: Should be from a scalar Variable node.
//   - limit: If incrementing ref would bring it above limit, instead generates an error.
//
// Returns:
//   - output: A copy of the input before increment.
func CountUpTo(scope *Scope, ref opgraph.Output, limit int64) (output opgraph.Output, err error) {
	attrs := map[string]any{"limit": limit}
	op, err := Build(scope, "CountUpTo", []opgraph.Input{ref}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// CumsumAttr is an optional argument to Cumsum.
type CumsumAttr func(optionalAttr)

// CumsumExclusive sets the optional exclusive attribute to value.
//
// value: If true, perform exclusive cumsum.
// If not specified, defaults to false
func CumsumExclusive(value bool) CumsumAttr {
	return func(m optionalAttr) {
		m["exclusive"] = value
	}
}

// CumsumReverse sets the optional reverse attribute to value.
//
// value: If true, perform the cumsum in reverse direction.
// If not specified, defaults to false
func CumsumReverse(value bool) CumsumAttr {
	return func(m optionalAttr) {
		m["reverse"] = value
	}
}

// Cumsum computes the cumulative sum of the tensor x along axis.
//
// Arguments:
//   - axis: A scalar tensor, the axis of the sum.
func Cumsum(scope *Scope, x opgraph.Output, axis opgraph.Output, optional ...CumsumAttr) (out opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Cumsum", []opgraph.Input{x, axis}, attrs)
	if err != nil {
		return
	}
	out = op.Output(0)
	return
}

// DepthwiseConv2dNativeAttr is an optional argument to DepthwiseConv2dNative.
type DepthwiseConv2dNativeAttr func(optionalAttr)

// DepthwiseConv2dNativeDataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func DepthwiseConv2dNativeDataFormat(value string) DepthwiseConv2dNativeAttr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// DepthwiseConv2dNativeDilations sets the optional dilations attribute to value.
//
// If not specified, defaults to [1, 1, 1, 1]
func DepthwiseConv2dNativeDilations(value []int64) DepthwiseConv2dNativeAttr {
	return func(m optionalAttr) {
		m["dilations"] = value
	}
}

// DepthwiseConv2dNative computes a 2-D depthwise convolution given 4-D input and filter tensors.
//
// Arguments:
//   - padding: The type of padding algorithm to use.
func DepthwiseConv2dNative(scope *Scope, input opgraph.Output, filter opgraph.Output, strides []int64, padding string, optional ...DepthwiseConv2dNativeAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"strides": strides, "padding": padding}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "DepthwiseConv2dNative", []opgraph.Input{input, filter}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Div returns x / y element-wise.
//
// Both inputs must have the same dtype. Broadcasting of the shapes is done by the executor.
func Div(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Div", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// DynamicPartition partitions data into num_partitions tensors using indices from partitions.
//
// Arguments:
//   - partitions: Any shape. Indices in the range [0, num_partitions).
//   - num_partitions: The number of partitions to output.
func DynamicPartition(scope *Scope, data opgraph.Output, partitions opgraph.Output, numPartitions int64) (outputs []opgraph.Output, err error) {
	attrs := map[string]any{"num_partitions": numPartitions}
	op, err := Build(scope, "DynamicPartition", []opgraph.Input{data, partitions}, attrs)
	if err != nil {
		return
	}
	var idx int
	if outputs, _, err = makeOutputList(op, idx, "outputs"); err != nil {
		return
	}
	return
}

// DynamicStitch interleaves the values from the data tensors into a single tensor.
func DynamicStitch(scope *Scope, indices []opgraph.Output, data []opgraph.Output) (merged opgraph.Output, err error) {
	op, err := Build(scope, "DynamicStitch", []opgraph.Input{opgraph.OutputList(indices), opgraph.OutputList(data)}, nil)
	if err != nil {
		return
	}
	merged = op.Output(0)
	return
}

// Einsum computes a tensor contraction according to the Einstein summation convention.
//
// Arguments:
//   - inputs: List of 1 or 2 Tensors.
//   - equation: String describing the Einstein Summation operation; in the format of np.einsum.
//
// Returns:
//   - output: Output Tensor with shape depending upon equation.
func Einsum(scope *Scope, inputs []opgraph.Output, equation string) (output opgraph.Output, err error) {
	attrs := map[string]any{"equation": equation}
	op, err := Build(scope, "Einsum", []opgraph.Input{opgraph.OutputList(inputs)}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Elu computes the exponential linear function.
func Elu(scope *Scope, features opgraph.Output) (activations opgraph.Output, err error) {
	op, err := Build(scope, "Elu", []opgraph.Input{features}, nil)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// EnterAttr is an optional argument to Enter.
type EnterAttr func(optionalAttr)

// EnterIsConstant sets the optional is_constant attribute to value.
//
// value: If true, the output is constant within the child frame.
// If not specified, defaults to false
func EnterIsConstant(value bool) EnterAttr {
	return func(m optionalAttr) {
		m["is_constant"] = value
	}
}

// EnterParallelIterations sets the optional parallel_iterations attribute to value.
//
// value: The number of iterations allowed to run in parallel.
// If not specified, defaults to 10
func EnterParallelIterations(value int64) EnterAttr {
	return func(m optionalAttr) {
		m["parallel_iterations"] = value
	}
}

// Enter creates or finds a child frame, and makes data available to the child frame.
//
// Arguments:
//   - data: The tensor to be made available to the child frame.
//   - frame_name: The name of the child frame.
//
// Returns:
//   - output: The same tensor as data.
func Enter(scope *Scope, data opgraph.Output, frameName string, optional ...EnterAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"frame_name": frameName}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Enter", []opgraph.Input{data}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// EqualAttr is an optional argument to Equal.
type EqualAttr func(optionalAttr)

// EqualIncompatibleShapeError sets the optional incompatible_shape_error attribute to value.
//
// value: If false, incompatible shapes return a scalar instead of an error.
// If not specified, defaults to true
func EqualIncompatibleShapeError(value bool) EqualAttr {
	return func(m optionalAttr) {
		m["incompatible_shape_error"] = value
	}
}

// Equal returns the truth value of (x == y) element-wise.
func Equal(scope *Scope, x opgraph.Output, y opgraph.Output, optional ...EqualAttr) (z opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Equal", []opgraph.Input{x, y}, attrs)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// Erf computes the Gauss error function of x element-wise.
func Erf(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Erf", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Exit exits the current frame to its parent frame.
//
// Arguments:
//   - data: The tensor to be made available to the parent frame.
//
// Returns:
//   - output: The same tensor as data.
func Exit(scope *Scope, data opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Exit", []opgraph.Input{data}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Exp computes exponential of x element-wise.
func Exp(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Exp", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// ExpandDims inserts a dimension of 1 into a tensor's shape.
//
// Arguments:
//   - dim: 0-D (scalar). Specifies the dimension index at which to expand the shape of input.
//
// Returns:
//   - output: Contains the same data as input, but its shape has an additional dimension of size 1 added.
func ExpandDims(scope *Scope, input opgraph.Output, dim opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "ExpandDims", []opgraph.Input{input, dim}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Fill creates a tensor filled with a scalar value.
//
// Arguments:
//   - dims: 1-D. Represents the shape of the output tensor.
//   - value: 0-D (scalar). Value to fill the returned tensor.
func Fill(scope *Scope, dims opgraph.Output, value opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Fill", []opgraph.Input{dims, value}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Floor returns element-wise largest integer not greater than x.
func Floor(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Floor", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// FloorDiv returns x // y element-wise, rounding toward the most negative integer.
func FloorDiv(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "FloorDiv", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// FloorMod returns the element-wise remainder of division, with the sign of the divisor.
func FloorMod(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "FloorMod", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// FusedBatchNormV3Attr is an optional argument to FusedBatchNormV3.
type FusedBatchNormV3Attr func(optionalAttr)

// FusedBatchNormV3Epsilon sets the optional epsilon attribute to value.
//
// value: A small float number added to the variance of x.
// If not specified, defaults to 0.0001
func FusedBatchNormV3Epsilon(value float32) FusedBatchNormV3Attr {
	return func(m optionalAttr) {
		m["epsilon"] = value
	}
}

// FusedBatchNormV3ExponentialAvgFactor sets the optional exponential_avg_factor attribute to value.
//
// If not specified, defaults to 1
func FusedBatchNormV3ExponentialAvgFactor(value float32) FusedBatchNormV3Attr {
	return func(m optionalAttr) {
		m["exponential_avg_factor"] = value
	}
}

// FusedBatchNormV3DataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func FusedBatchNormV3DataFormat(value string) FusedBatchNormV3Attr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// FusedBatchNormV3IsTraining sets the optional is_training attribute to value.
//
// value: A bool value to indicate the operation is for training (default) or inference.
// If not specified, defaults to true
func FusedBatchNormV3IsTraining(value bool) FusedBatchNormV3Attr {
	return func(m optionalAttr) {
		m["is_training"] = value
	}
}

// FusedBatchNormV3 applies batch normalization.
//
// Note that the size of 4D Tensors are defined by either NHWC or NCHW. The size of 1D Tensors
// matches the dimension C of the 4D Tensors.
//
// Arguments:
//   - x: A 4D Tensor for input data.
//   - scale: A 1D Tensor for scaling factor, to scale the normalized x.
//   - offset: A 1D Tensor for offset, to shift to the normalized x.
//   - mean: A 1D Tensor for population mean.
//   - variance: A 1D Tensor for population variance.
//
// Returns:
//   - y: A 4D Tensor for output data.
//   - batch_mean: A 1D Tensor for the computed batch mean.
//   - batch_variance: A 1D Tensor for the computed batch variance.
func FusedBatchNormV3(scope *Scope, x opgraph.Output, scale opgraph.Output, offset opgraph.Output, mean opgraph.Output, variance opgraph.Output, optional ...FusedBatchNormV3Attr) (y opgraph.Output, batchMean opgraph.Output, batchVariance opgraph.Output, reserveSpace1 opgraph.Output, reserveSpace2 opgraph.Output, reserveSpace3 opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "FusedBatchNormV3", []opgraph.Input{x, scale, offset, mean, variance}, attrs)
	if err != nil {
		return
	}
	y = op.Output(0)
	batchMean = op.Output(1)
	batchVariance = op.Output(2)
	reserveSpace1 = op.Output(3)
	reserveSpace2 = op.Output(4)
	reserveSpace3 = op.Output(5)
	return
}

// GatherNd gathers slices from params into a tensor with shape specified by indices.
//
// Arguments:
//   - params: The tensor from which to gather values.
//   - indices: Index tensor.
func GatherNd(scope *Scope, params opgraph.Output, indices opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "GatherNd", []opgraph.Input{params, indices}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// GatherV2Attr is an optional argument to GatherV2.
type GatherV2Attr func(optionalAttr)

// GatherV2BatchDims sets the optional batch_dims attribute to value.
//
// If not specified, defaults to 0
func GatherV2BatchDims(value int64) GatherV2Attr {
	return func(m optionalAttr) {
		m["batch_dims"] = value
	}
}

// GatherV2 gathers slices from params axis according to indices.
//
// Arguments:
//   - params: The tensor from which to gather values. Must be at least rank axis + 1.
//   - indices: Index tensor. Must be in range [0, params.shape[axis]).
//   - axis: The axis in params to gather indices from.
//
// Returns:
//   - output: Values from params gathered from indices given by indices.
func GatherV2(scope *Scope, params opgraph.Output, indices opgraph.Output, axis opgraph.Output, optional ...GatherV2Attr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "GatherV2", []opgraph.Input{params, indices, axis}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Greater returns the truth value of (x > y) element-wise.
func Greater(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Greater", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// GreaterEqual returns the truth value of (x >= y) element-wise.
func GreaterEqual(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "GreaterEqual", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// HostConst returns a constant tensor on the host. Only for writing C++ tests.
//
// Arguments:
//   - value: Attr value is the tensor to return.
func HostConst(scope *Scope, value *tensors.Tensor, dtype dtypes.DType) (output opgraph.Output, err error) {
	attrs := map[string]any{"value": value, "dtype": dtype}
	op, err := Build(scope, "HostConst", []opgraph.Input{}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Identity returns a tensor with the same shape and contents as the input tensor or value.
func Identity(scope *Scope, input opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Identity", []opgraph.Input{input}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// IdentityN returns a list of tensors with the same shapes and contents as the input tensors.
//
// This op can be used to override the gradient for complicated functions.
func IdentityN(scope *Scope, input []opgraph.Output) (output []opgraph.Output, err error) {
	op, err := Build(scope, "IdentityN", []opgraph.Input{opgraph.OutputList(input)}, nil)
	if err != nil {
		return
	}
	var idx int
	if output, _, err = makeOutputList(op, idx, "output"); err != nil {
		return
	}
	return
}

// ImagAttr is an optional argument to Imag.
type ImagAttr func(optionalAttr)

// ImagTout sets the optional Tout attribute to value.
//
// If not specified, defaults to float32
func ImagTout(value dtypes.DType) ImagAttr {
	return func(m optionalAttr) {
		m["Tout"] = value
	}
}

// Imag returns the imaginary part of a complex number.
func Imag(scope *Scope, input opgraph.Output, optional ...ImagAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Imag", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// InTopKV2 says whether the targets are in the top K predictions.
//
// Arguments:
//   - predictions: A batch_size x classes tensor.
//   - targets: A batch_size vector of class ids.
//   - k: Number of top elements to look at for computing precision.
//
// Returns:
//   - precision: Computed precision at k as a bool Tensor.
func InTopKV2(scope *Scope, predictions opgraph.Output, targets opgraph.Output, k opgraph.Output) (precision opgraph.Output, err error) {
	op, err := Build(scope, "InTopKV2", []opgraph.Input{predictions, targets, k}, nil)
	if err != nil {
		return
	}
	precision = op.Output(0)
	return
}

// Invert inverts (flips) each bit of supported types.
//
// For example, int8 (decimal 2) binary 00000010 becomes (decimal -3) binary 11111101.
func Invert(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Invert", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// IsFinite returns which elements of x are finite.
func IsFinite(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "IsFinite", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// IsNan returns which elements of x are NaN.
func IsNan(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "IsNan", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// L2Loss computes half the L2 norm of a tensor without the sqrt.
//
// Arguments:
//   - t: Typically 2-D, but may have any dimensions.
//
// Returns:
//   - output: 0-D.
func L2Loss(scope *Scope, t opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "L2Loss", []opgraph.Input{t}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// LRNAttr is an optional argument to LRN.
type LRNAttr func(optionalAttr)

// LRNDepthRadius sets the optional depth_radius attribute to value.
//
// value: 0-D. Half-width of the 1-D normalization window.
// If not specified, defaults to 5
func LRNDepthRadius(value int64) LRNAttr {
	return func(m optionalAttr) {
		m["depth_radius"] = value
	}
}

// LRNBias sets the optional bias attribute to value.
//
// value: An offset (usually positive to avoid dividing by 0).
// If not specified, defaults to 1
func LRNBias(value float32) LRNAttr {
	return func(m optionalAttr) {
		m["bias"] = value
	}
}

// LRNAlpha sets the optional alpha attribute to value.
//
// value: A scale factor, usually positive.
// If not specified, defaults to 1
func LRNAlpha(value float32) LRNAttr {
	return func(m optionalAttr) {
		m["alpha"] = value
	}
}

// LRNBeta sets the optional beta attribute to value.
//
// value: An exponent.
// If not specified, defaults to 0.5
func LRNBeta(value float32) LRNAttr {
	return func(m optionalAttr) {
		m["beta"] = value
	}
}

// LRN applies local response normalization.
//
// Arguments:
//   - input: 4-D.
func LRN(scope *Scope, input opgraph.Output, optional ...LRNAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "LRN", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// LeakyReluAttr is an optional argument to LeakyRelu.
type LeakyReluAttr func(optionalAttr)

// LeakyReluAlpha sets the optional alpha attribute to value.
//
// If not specified, defaults to 0.2
func LeakyReluAlpha(value float32) LeakyReluAttr {
	return func(m optionalAttr) {
		m["alpha"] = value
	}
}

// LeakyRelu computes rectified linear with a slope for the negative values.
func LeakyRelu(scope *Scope, features opgraph.Output, optional ...LeakyReluAttr) (activations opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "LeakyRelu", []opgraph.Input{features}, attrs)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// LeftShift elementwise computes the bitwise left-shift of x and y.
func LeftShift(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "LeftShift", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// Less returns the truth value of (x < y) element-wise.
func Less(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Less", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// LessEqual returns the truth value of (x <= y) element-wise.
func LessEqual(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "LessEqual", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// Log computes natural logarithm of x element-wise.
func Log(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Log", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// LogSoftmax computes log softmax activations.
//
// Arguments:
//   - logits: 2-D with shape [batch_size, num_classes].
//
// Returns:
//   - logsoftmax: Same shape as logits.
func LogSoftmax(scope *Scope, logits opgraph.Output) (logsoftmax opgraph.Output, err error) {
	op, err := Build(scope, "LogSoftmax", []opgraph.Input{logits}, nil)
	if err != nil {
		return
	}
	logsoftmax = op.Output(0)
	return
}

// LogicalAnd returns the truth value of x AND y element-wise.
func LogicalAnd(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "LogicalAnd", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// LogicalNot returns the truth value of NOT x element-wise.
//
// Arguments:
//   - x: A tensor of type bool.
//
// Returns:
//   - y: A tensor of type bool with the same shape as x.
func LogicalNot(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "LogicalNot", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// LogicalOr returns the truth value of x OR y element-wise.
func LogicalOr(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "LogicalOr", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// LoopCond forwards the input to the output.
//
// This operator represents the loop termination condition used by the pivot switches of a loop.
//
// Arguments:
//   - input: A boolean scalar, representing the branch predicate of the Switch op.
//
// Returns:
//   - output: The same tensor as input.
func LoopCond(scope *Scope, input opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "LoopCond", []opgraph.Input{input}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// MatMulAttr is an optional argument to MatMul.
type MatMulAttr func(optionalAttr)

// MatMulTransposeA sets the optional transpose_a attribute to value.
//
// value: If true, a is transposed before multiplication.
// If not specified, defaults to false
func MatMulTransposeA(value bool) MatMulAttr {
	return func(m optionalAttr) {
		m["transpose_a"] = value
	}
}

// MatMulTransposeB sets the optional transpose_b attribute to value.
//
// value: If true, b is transposed before multiplication.
// If not specified, defaults to false
func MatMulTransposeB(value bool) MatMulAttr {
	return func(m optionalAttr) {
		m["transpose_b"] = value
	}
}

// MatMul multiplies the matrix a by the matrix b.
//
// The inputs must be two-dimensional matrices and the inner dimension of a (after being transposed
// if transpose_a is true) must match the outer dimension of b (after being transposed if
// transposed_b is true).
func MatMul(scope *Scope, a opgraph.Output, b opgraph.Output, optional ...MatMulAttr) (product opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "MatMul", []opgraph.Input{a, b}, attrs)
	if err != nil {
		return
	}
	product = op.Output(0)
	return
}

// MaxAttr is an optional argument to Max.
type MaxAttr func(optionalAttr)

// MaxKeepDims sets the optional keep_dims attribute to value.
//
// value: If true, retain reduced dimensions with length 1.
// If not specified, defaults to false
func MaxKeepDims(value bool) MaxAttr {
	return func(m optionalAttr) {
		m["keep_dims"] = value
	}
}

// Max computes the maximum of elements across dimensions of a tensor.
//
// Reduces input along the dimensions given in axis. Unless keep_dims is true, the rank of the
// tensor is reduced by 1 for each entry in axis.
//
// Arguments:
//   - input: The tensor to reduce.
//   - axis: The dimensions to reduce. Must be in the range [-rank(input), rank(input)).
//
// Returns:
//   - output: The reduced tensor.
func Max(scope *Scope, input opgraph.Output, axis opgraph.Output, optional ...MaxAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Max", []opgraph.Input{input, axis}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// MaxPoolAttr is an optional argument to MaxPool.
type MaxPoolAttr func(optionalAttr)

// MaxPoolDataFormat sets the optional data_format attribute to value.
//
// value: Specify the data format of the input and output data.
// If not specified, defaults to "NHWC"
func MaxPoolDataFormat(value string) MaxPoolAttr {
	return func(m optionalAttr) {
		m["data_format"] = value
	}
}

// MaxPool performs max pooling on the input.
//
// Arguments:
//   - input: 4-D input to pool over.
//   - ksize: The size of the window for each dimension of the input tensor.
//   - strides: The stride of the sliding window for each dimension of the input tensor.
//   - padding: The type of padding algorithm to use.
//
// Returns:
//   - output: The max pooled output tensor.
func MaxPool(scope *Scope, input opgraph.Output, ksize []int64, strides []int64, padding string, optional ...MaxPoolAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"ksize": ksize, "strides": strides, "padding": padding}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "MaxPool", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Maximum returns the max of x and y (i.e. x > y ? x : y) element-wise.
func Maximum(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Maximum", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// MeanAttr is an optional argument to Mean.
type MeanAttr func(optionalAttr)

// MeanKeepDims sets the optional keep_dims attribute to value.
//
// value: If true, retain reduced dimensions with length 1.
// If not specified, defaults to false
func MeanKeepDims(value bool) MeanAttr {
	return func(m optionalAttr) {
		m["keep_dims"] = value
	}
}

// Mean computes the mean of elements across dimensions of a tensor.
//
// Reduces input along the dimensions given in axis. Unless keep_dims is true, the rank of the
// tensor is reduced by 1 for each entry in axis.
//
// Arguments:
//   - input: The tensor to reduce.
//   - axis: The dimensions to reduce. Must be in the range [-rank(input), rank(input)).
//
// Returns:
//   - output: The reduced tensor.
func Mean(scope *Scope, input opgraph.Output, axis opgraph.Output, optional ...MeanAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Mean", []opgraph.Input{input, axis}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Merge forwards the value of an available tensor from inputs to output.
//
// Arguments:
//   - inputs: The input tensors, exactly one of which will become available.
//
// Returns:
//   - output: Will be set to the available input tensor.
//   - value_index: The index of the chosen input tensor in inputs.
func Merge(scope *Scope, inputs []opgraph.Output) (output opgraph.Output, valueIndex opgraph.Output, err error) {
	op, err := Build(scope, "Merge", []opgraph.Input{opgraph.OutputList(inputs)}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	valueIndex = op.Output(1)
	return
}

// MinAttr is an optional argument to Min.
type MinAttr func(optionalAttr)

// MinKeepDims sets the optional keep_dims attribute to value.
//
// value: If true, retain reduced dimensions with length 1.
// If not specified, defaults to false
func MinKeepDims(value bool) MinAttr {
	return func(m optionalAttr) {
		m["keep_dims"] = value
	}
}

// Min computes the minimum of elements across dimensions of a tensor.
//
// Reduces input along the dimensions given in axis. Unless keep_dims is true, the rank of the
// tensor is reduced by 1 for each entry in axis.
//
// Arguments:
//   - input: The tensor to reduce.
//   - axis: The dimensions to reduce. Must be in the range [-rank(input), rank(input)).
//
// Returns:
//   - output: The reduced tensor.
func Min(scope *Scope, input opgraph.Output, axis opgraph.Output, optional ...MinAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Min", []opgraph.Input{input, axis}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Minimum returns the min of x and y (i.e. x < y ? x : y) element-wise.
func Minimum(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Minimum", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// MirrorPad pads a tensor with mirrored values.
//
// Arguments:
//   - input: The input tensor to be padded.
//   - paddings: A two-column matrix specifying the padding sizes.
//   - mode: Either REFLECT or SYMMETRIC.
//
// Returns:
//   - output: The padded tensor.
func MirrorPad(scope *Scope, input opgraph.Output, paddings opgraph.Output, mode string) (output opgraph.Output, err error) {
	attrs := map[string]any{"mode": mode}
	op, err := Build(scope, "MirrorPad", []opgraph.Input{input, paddings}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Mul returns x * y element-wise.
//
// Both inputs must have the same dtype. Broadcasting of the shapes is done by the executor.
func Mul(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Mul", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// MultinomialAttr is an optional argument to Multinomial.
type MultinomialAttr func(optionalAttr)

// MultinomialSeed sets the optional seed attribute to value.
//
// value: If either seed or seed2 are set to be non-zero, the random number generator is seeded by the given seed.
// If not specified, defaults to 0
func MultinomialSeed(value int64) MultinomialAttr {
	return func(m optionalAttr) {
		m["seed"] = value
	}
}

// MultinomialSeed2 sets the optional seed2 attribute to value.
//
// value: A second seed to avoid seed collision.
// If not specified, defaults to 0
func MultinomialSeed2(value int64) MultinomialAttr {
	return func(m optionalAttr) {
		m["seed2"] = value
	}
}

// MultinomialOutputDtype sets the optional output_dtype attribute to value.
//
// If not specified, defaults to int64
func MultinomialOutputDtype(value dtypes.DType) MultinomialAttr {
	return func(m optionalAttr) {
		m["output_dtype"] = value
	}
}

// Multinomial draws samples from a multinomial distribution.
//
// Arguments:
//   - logits: 2-D Tensor with shape [batch_size, num_classes].
//   - num_samples: 0-D. Number of independent samples to draw for each row slice.
//
// Returns:
//   - output: 2-D Tensor with shape [batch_size, num_samples].
func Multinomial(scope *Scope, logits opgraph.Output, numSamples opgraph.Output, optional ...MultinomialAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Multinomial", []opgraph.Input{logits, numSamples}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Neg computes numerical negative value element-wise.
func Neg(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Neg", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// NextIteration makes its input available to the next iteration.
//
// Arguments:
//   - data: The tensor to be made available to the next iteration.
//
// Returns:
//   - output: The same tensor as data.
func NextIteration(scope *Scope, data opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "NextIteration", []opgraph.Input{data}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// NoOp does nothing. Only useful as a placeholder for control edges.
func NoOp(scope *Scope) (op *opgraph.Operation, err error) {
	return Build(scope, "NoOp", []opgraph.Input{}, nil)
}

// NotEqualAttr is an optional argument to NotEqual.
type NotEqualAttr func(optionalAttr)

// NotEqualIncompatibleShapeError sets the optional incompatible_shape_error attribute to value.
//
// value: If false, incompatible shapes return a scalar instead of an error.
// If not specified, defaults to true
func NotEqualIncompatibleShapeError(value bool) NotEqualAttr {
	return func(m optionalAttr) {
		m["incompatible_shape_error"] = value
	}
}

// NotEqual returns the truth value of (x != y) element-wise.
func NotEqual(scope *Scope, x opgraph.Output, y opgraph.Output, optional ...NotEqualAttr) (z opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "NotEqual", []opgraph.Input{x, y}, attrs)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// OneHotAttr is an optional argument to OneHot.
type OneHotAttr func(optionalAttr)

// OneHotAxis sets the optional axis attribute to value.
//
// value: The axis to fill (default: -1, a new inner-most axis).
// If not specified, defaults to -1
func OneHotAxis(value int64) OneHotAttr {
	return func(m optionalAttr) {
		m["axis"] = value
	}
}

// OneHot returns a one-hot tensor.
//
// Arguments:
//   - indices: A tensor of indices.
//   - depth: A scalar defining the depth of the one hot dimension.
//   - on_value: A scalar defining the value to fill in output when indices[j] = i.
//   - off_value: A scalar defining the value to fill in output when indices[j] != i.
//
// Returns:
//   - output: The one-hot tensor.
func OneHot(scope *Scope, indices opgraph.Output, depth opgraph.Output, onValue opgraph.Output, offValue opgraph.Output, optional ...OneHotAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "OneHot", []opgraph.Input{indices, depth, onValue, offValue}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// OnesLike returns a tensor of ones with the same shape and type as x.
//
// Arguments:
//   - x: a tensor of type T.
//
// Returns:
//   - y: a tensor of the same shape and type as x but filled with ones.
func OnesLike(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "OnesLike", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// PackAttr is an optional argument to Pack.
type PackAttr func(optionalAttr)

// PackAxis sets the optional axis attribute to value.
//
// value: Dimension along which to pack. Negative values wrap around.
// If not specified, defaults to 0
func PackAxis(value int64) PackAttr {
	return func(m optionalAttr) {
		m["axis"] = value
	}
}

// Pack packs a list of N rank-R tensors into one rank-(R+1) tensor.
//
// Arguments:
//   - values: Must be of same shape and type.
//
// Returns:
//   - output: The packed tensor.
func Pack(scope *Scope, values []opgraph.Output, optional ...PackAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Pack", []opgraph.Input{opgraph.OutputList(values)}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Pad pads a tensor with zeros.
func Pad(scope *Scope, input opgraph.Output, paddings opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Pad", []opgraph.Input{input, paddings}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// PadV2 pads a tensor.
func PadV2(scope *Scope, input opgraph.Output, paddings opgraph.Output, constantValues opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "PadV2", []opgraph.Input{input, paddings, constantValues}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// PlaceholderWithDefault passes through input when its output is not fed.
//
// Arguments:
//   - input: The default value to produce when output is not fed.
//   - shape: The (possibly partial) shape of the tensor.
//
// Returns:
//   - output: A placeholder tensor that defaults to input if it is not fed.
func PlaceholderWithDefault(scope *Scope, input opgraph.Output, shape shapes.Shape) (output opgraph.Output, err error) {
	attrs := map[string]any{"shape": shape}
	op, err := Build(scope, "PlaceholderWithDefault", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// PopulationCount computes element-wise population count (a.k.a. popcount, bitsum, bitcount).
func PopulationCount(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "PopulationCount", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Pow computes the power of one value to another.
func Pow(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Pow", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// PreventGradientAttr is an optional argument to PreventGradient.
type PreventGradientAttr func(optionalAttr)

// PreventGradientMessage sets the optional message attribute to value.
//
// value: Will be printed in the error when anyone tries to differentiate this operation.
// If not specified, defaults to ""
func PreventGradientMessage(value string) PreventGradientAttr {
	return func(m optionalAttr) {
		m["message"] = value
	}
}

// PreventGradient triggers an error if a gradient is requested, otherwise it is an identity op.
//
// Arguments:
//   - input: any tensor.
//
// Returns:
//   - output: the same input tensor.
func PreventGradient(scope *Scope, input opgraph.Output, optional ...PreventGradientAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "PreventGradient", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ProdAttr is an optional argument to Prod.
type ProdAttr func(optionalAttr)

// ProdKeepDims sets the optional keep_dims attribute to value.
//
// value: If true, retain reduced dimensions with length 1.
// If not specified, defaults to false
func ProdKeepDims(value bool) ProdAttr {
	return func(m optionalAttr) {
		m["keep_dims"] = value
	}
}

// Prod computes the product of elements across dimensions of a tensor.
//
// Reduces input along the dimensions given in axis. Unless keep_dims is true, the rank of the
// tensor is reduced by 1 for each entry in axis.
//
// Arguments:
//   - input: The tensor to reduce.
//   - axis: The dimensions to reduce. Must be in the range [-rank(input), rank(input)).
//
// Returns:
//   - output: The reduced tensor.
func Prod(scope *Scope, input opgraph.Output, axis opgraph.Output, optional ...ProdAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Prod", []opgraph.Input{input, axis}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// RaggedGather gathers ragged slices from params axis 0 according to indices.
//
// Arguments:
//   - params_nested_splits: The nested_row_splits tensors that define the row-partitioning for the params RaggedTensor input.
//   - params_dense_values: The flat_values for the params RaggedTensor.
//   - indices: Indices in the outermost dimension of params of the values that should be gathered.
//   - output_ragged_rank: The ragged rank of the output RaggedTensor.
//
// Returns:
//   - output_nested_splits: The nested_row_splits tensors that define the row-partitioning for the returned RaggedTensor.
//   - output_dense_values: The flat_values for the returned RaggedTensor.
func RaggedGather(scope *Scope, paramsNestedSplits []opgraph.Output, paramsDenseValues opgraph.Output, indices opgraph.Output, outputRaggedRank int64) (outputNestedSplits []opgraph.Output, outputDenseValues opgraph.Output, err error) {
	attrs := map[string]any{"output_ragged_rank": outputRaggedRank}
	op, err := Build(scope, "RaggedGather", []opgraph.Input{opgraph.OutputList(paramsNestedSplits), paramsDenseValues, indices}, attrs)
	if err != nil {
		return
	}
	var idx int
	if outputNestedSplits, idx, err = makeOutputList(op, idx, "output_nested_splits"); err != nil {
		return
	}
	outputDenseValues = op.Output(idx)
	return
}

// RandomShuffleAttr is an optional argument to RandomShuffle.
type RandomShuffleAttr func(optionalAttr)

// RandomShuffleSeed sets the optional seed attribute to value.
//
// value: If either seed or seed2 are set to be non-zero, the random number generator is seeded by the given seed.
// If not specified, defaults to 0
func RandomShuffleSeed(value int64) RandomShuffleAttr {
	return func(m optionalAttr) {
		m["seed"] = value
	}
}

// RandomShuffleSeed2 sets the optional seed2 attribute to value.
//
// value: A second seed to avoid seed collision.
// If not specified, defaults to 0
func RandomShuffleSeed2(value int64) RandomShuffleAttr {
	return func(m optionalAttr) {
		m["seed2"] = value
	}
}

// RandomShuffle randomly shuffles a tensor along its first dimension.
//
// Arguments:
//   - value: The tensor to be shuffled.
//
// Returns:
//   - output: A tensor of same shape and type as value, shuffled along its first dimension.
func RandomShuffle(scope *Scope, value opgraph.Output, optional ...RandomShuffleAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "RandomShuffle", []opgraph.Input{value}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// RandomStandardNormalAttr is an optional argument to RandomStandardNormal.
type RandomStandardNormalAttr func(optionalAttr)

// RandomStandardNormalSeed sets the optional seed attribute to value.
//
// value: If either seed or seed2 are set to be non-zero, the random number generator is seeded by the given seed.
// If not specified, defaults to 0
func RandomStandardNormalSeed(value int64) RandomStandardNormalAttr {
	return func(m optionalAttr) {
		m["seed"] = value
	}
}

// RandomStandardNormalSeed2 sets the optional seed2 attribute to value.
//
// value: A second seed to avoid seed collision.
// If not specified, defaults to 0
func RandomStandardNormalSeed2(value int64) RandomStandardNormalAttr {
	return func(m optionalAttr) {
		m["seed2"] = value
	}
}

// RandomStandardNormal outputs random values from a normal distribution.
//
// The generated values will have mean 0 and standard deviation 1.
//
// Arguments:
//   - shape: The shape of the output tensor.
//   - dtype: The type of the output.
//
// Returns:
//   - output: A tensor of the specified shape filled with random values.
func RandomStandardNormal(scope *Scope, shape opgraph.Output, dtype dtypes.DType, optional ...RandomStandardNormalAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"dtype": dtype}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "RandomStandardNormal", []opgraph.Input{shape}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// RandomUniformAttr is an optional argument to RandomUniform.
type RandomUniformAttr func(optionalAttr)

// RandomUniformSeed sets the optional seed attribute to value.
//
// value: If either seed or seed2 are set to be non-zero, the random number generator is seeded by the given seed.
// If not specified, defaults to 0
func RandomUniformSeed(value int64) RandomUniformAttr {
	return func(m optionalAttr) {
		m["seed"] = value
	}
}

// RandomUniformSeed2 sets the optional seed2 attribute to value.
//
// value: A second seed to avoid seed collision.
// If not specified, defaults to 0
func RandomUniformSeed2(value int64) RandomUniformAttr {
	return func(m optionalAttr) {
		m["seed2"] = value
	}
}

// RandomUniform outputs random values from a uniform distribution.
//
// The generated values follow a uniform distribution in the range [0, 1).
//
// Arguments:
//   - shape: The shape of the output tensor.
//   - dtype: The type of the output.
//
// Returns:
//   - output: A tensor of the specified shape filled with random values.
func RandomUniform(scope *Scope, shape opgraph.Output, dtype dtypes.DType, optional ...RandomUniformAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"dtype": dtype}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "RandomUniform", []opgraph.Input{shape}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// RandomUniformIntAttr is an optional argument to RandomUniformInt.
type RandomUniformIntAttr func(optionalAttr)

// RandomUniformIntSeed sets the optional seed attribute to value.
//
// value: If either seed or seed2 are set to be non-zero, the random number generator is seeded by the given seed.
// If not specified, defaults to 0
func RandomUniformIntSeed(value int64) RandomUniformIntAttr {
	return func(m optionalAttr) {
		m["seed"] = value
	}
}

// RandomUniformIntSeed2 sets the optional seed2 attribute to value.
//
// value: A second seed to avoid seed collision.
// If not specified, defaults to 0
func RandomUniformIntSeed2(value int64) RandomUniformIntAttr {
	return func(m optionalAttr) {
		m["seed2"] = value
	}
}

// RandomUniformInt outputs random integers from a uniform distribution.
//
// Arguments:
//   - shape: The shape of the output tensor.
//   - minval: 0-D. Inclusive lower bound on the generated integers.
//   - maxval: 0-D. Exclusive upper bound on the generated integers.
//
// Returns:
//   - output: A tensor of the specified shape filled with uniform random integers.
func RandomUniformInt(scope *Scope, shape opgraph.Output, minval opgraph.Output, maxval opgraph.Output, optional ...RandomUniformIntAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "RandomUniformInt", []opgraph.Input{shape, minval, maxval}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Range creates a sequence of numbers.
//
// The sequence begins at start and extends by increments of delta up to but not including limit.
//
// Arguments:
//   - start: 0-D (scalar). First entry in the sequence.
//   - limit: 0-D (scalar). Upper limit of sequence, exclusive.
//   - delta: 0-D (scalar). Optional. Default is 1. Number that increments start.
//
// Returns:
//   - output: 1-D.
func Range(scope *Scope, start opgraph.Output, limit opgraph.Output, delta opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Range", []opgraph.Input{start, limit, delta}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Rank returns the rank of a tensor.
func Rank(scope *Scope, input opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Rank", []opgraph.Input{input}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// RealAttr is an optional argument to Real.
type RealAttr func(optionalAttr)

// RealTout sets the optional Tout attribute to value.
//
// If not specified, defaults to float32
func RealTout(value dtypes.DType) RealAttr {
	return func(m optionalAttr) {
		m["Tout"] = value
	}
}

// Real returns the real part of a complex number.
func Real(scope *Scope, input opgraph.Output, optional ...RealAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Real", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Reciprocal computes the reciprocal of x element-wise.
func Reciprocal(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Reciprocal", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Relu computes rectified linear: max(features, 0).
func Relu(scope *Scope, features opgraph.Output) (activations opgraph.Output, err error) {
	op, err := Build(scope, "Relu", []opgraph.Input{features}, nil)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// Relu6 computes rectified linear 6: min(max(features, 0), 6).
func Relu6(scope *Scope, features opgraph.Output) (activations opgraph.Output, err error) {
	op, err := Build(scope, "Relu6", []opgraph.Input{features}, nil)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// Reshape reshapes a tensor.
//
// Given tensor, this operation returns a tensor that has the same values as tensor with shape shape.
//
// If one component of 1-D tensor shape is the special value -1, the size of that dimension is
// computed so that the total size remains constant.
//
// Arguments:
//   - shape: Defines the shape of the output tensor.
func Reshape(scope *Scope, tensor opgraph.Output, shape opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Reshape", []opgraph.Input{tensor, shape}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ReverseV2 reverses specific dimensions of a tensor.
//
// Arguments:
//   - tensor: Up to 8-D.
//   - axis: 1-D. The indices of the dimensions to reverse.
//
// Returns:
//   - output: The same shape as tensor.
func ReverseV2(scope *Scope, tensor opgraph.Output, axis opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "ReverseV2", []opgraph.Input{tensor, axis}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// RightShift elementwise computes the bitwise right-shift of x and y.
func RightShift(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "RightShift", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// Round rounds the values of a tensor to the nearest integer, element-wise.
//
// Rounds half to even, also known as bankers rounding.
func Round(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Round", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Rsqrt computes reciprocal of square root of x element-wise.
func Rsqrt(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Rsqrt", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// ScatterNd scatters updates into a tensor of shape shape according to indices.
//
// Arguments:
//   - indices: Tensor of indices.
//   - updates: Values to scatter into the output tensor.
//   - shape: 1-D. The shape of the output tensor.
func ScatterNd(scope *Scope, indices opgraph.Output, updates opgraph.Output, shape opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "ScatterNd", []opgraph.Input{indices, updates, shape}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// ScatterUpdateAttr is an optional argument to ScatterUpdate.
type ScatterUpdateAttr func(optionalAttr)

// ScatterUpdateUseLocking sets the optional use_locking attribute to value.
//
// If not specified, defaults to true
func ScatterUpdateUseLocking(value bool) ScatterUpdateAttr {
	return func(m optionalAttr) {
		m["use_locking"] = value
	}
}

// ScatterUpdate applies sparse updates to a variable reference.
//
// Arguments:
//   - ref: Should be from a Variable node.
//   - indices: A tensor of indices into the first dimension of ref.
//   - updates: A tensor of updated values to store in ref.
func ScatterUpdate(scope *Scope, ref opgraph.Output, indices opgraph.Output, updates opgraph.Output, optional ...ScatterUpdateAttr) (outputRef opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "ScatterUpdate", []opgraph.Input{ref, indices, updates}, attrs)
	if err != nil {
		return
	}
	outputRef = op.Output(0)
	return
}

// Select selects elements from t or e, depending on condition.
//
// The t and e tensors must all have the same shape, and the output will also have that shape.
func Select(scope *Scope, condition opgraph.Output, t opgraph.Output, e opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Select", []opgraph.Input{condition, t, e}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Selu computes the scaled exponential linear function.
func Selu(scope *Scope, features opgraph.Output) (activations opgraph.Output, err error) {
	op, err := Build(scope, "Selu", []opgraph.Input{features}, nil)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// ShapeAttr is an optional argument to Shape.
type ShapeAttr func(optionalAttr)

// ShapeOutType sets the optional out_type attribute to value.
//
// If not specified, defaults to int32
func ShapeOutType(value dtypes.DType) ShapeAttr {
	return func(m optionalAttr) {
		m["out_type"] = value
	}
}

// Shape returns the shape of a tensor.
func Shape(scope *Scope, input opgraph.Output, optional ...ShapeAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Shape", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Sigmoid computes sigmoid of x element-wise.
func Sigmoid(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Sigmoid", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Sign returns an element-wise indication of the sign of a number.
func Sign(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Sign", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Sin computes sine of x element-wise.
func Sin(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Sin", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// SizeAttr is an optional argument to Size.
type SizeAttr func(optionalAttr)

// SizeOutType sets the optional out_type attribute to value.
//
// If not specified, defaults to int32
func SizeOutType(value dtypes.DType) SizeAttr {
	return func(m optionalAttr) {
		m["out_type"] = value
	}
}

// Size returns the size of a tensor.
func Size(scope *Scope, input opgraph.Output, optional ...SizeAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Size", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Slice returns a slice from input.
//
// Arguments:
//   - begin: begin[i] specifies the offset into the i'th dimension of input to slice from.
//   - size: size[i] specifies the number of elements of the i'th dimension of input to slice.
func Slice(scope *Scope, input opgraph.Output, begin opgraph.Output, size opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Slice", []opgraph.Input{input, begin, size}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Softmax computes softmax activations.
//
// For each batch i and class j we have softmax[i, j] = exp(logits[i, j]) / sum_j(exp(logits[i, j])).
//
// Arguments:
//   - logits: 2-D with shape [batch_size, num_classes].
//
// Returns:
//   - softmax: Same shape as logits.
func Softmax(scope *Scope, logits opgraph.Output) (softmax opgraph.Output, err error) {
	op, err := Build(scope, "Softmax", []opgraph.Input{logits}, nil)
	if err != nil {
		return
	}
	softmax = op.Output(0)
	return
}

// SoftmaxCrossEntropyWithLogits computes softmax cross entropy cost and gradients to backpropagate.
//
// Arguments:
//   - features: batch_size x num_classes matrix.
//   - labels: batch_size x num_classes matrix with a probability distribution per row.
//
// Returns:
//   - loss: Per example loss (batch_size vector).
//   - backprop: backpropagated gradients (batch_size x num_classes matrix).
func SoftmaxCrossEntropyWithLogits(scope *Scope, features opgraph.Output, labels opgraph.Output) (loss opgraph.Output, backprop opgraph.Output, err error) {
	op, err := Build(scope, "SoftmaxCrossEntropyWithLogits", []opgraph.Input{features, labels}, nil)
	if err != nil {
		return
	}
	loss = op.Output(0)
	backprop = op.Output(1)
	return
}

// Softplus computes softplus: log(exp(features) + 1).
func Softplus(scope *Scope, features opgraph.Output) (activations opgraph.Output, err error) {
	op, err := Build(scope, "Softplus", []opgraph.Input{features}, nil)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// Softsign computes softsign: features / (abs(features) + 1).
func Softsign(scope *Scope, features opgraph.Output) (activations opgraph.Output, err error) {
	op, err := Build(scope, "Softsign", []opgraph.Input{features}, nil)
	if err != nil {
		return
	}
	activations = op.Output(0)
	return
}

// SparseAdd adds two SparseTensor objects to produce another SparseTensor.
//
// Arguments:
//   - a_indices: 2-D. The indices of the first SparseTensor, size [nnz, ndims] Matrix.
//   - a_values: 1-D. The values of the first SparseTensor, size [nnz] Vector.
//   - a_shape: 1-D. The shape of the first SparseTensor, size [ndims] Vector.
//   - b_indices: 2-D. The indices of the second SparseTensor, size [nnz, ndims] Matrix.
//   - b_values: 1-D. The values of the second SparseTensor, size [nnz] Vector.
//   - b_shape: 1-D. The shape of the second SparseTensor, size [ndims] Vector.
//   - thresh: 0-D. The magnitude threshold that determines if an output value/index pair takes space.
func SparseAdd(scope *Scope, aIndices opgraph.Output, aValues opgraph.Output, aShape opgraph.Output, bIndices opgraph.Output, bValues opgraph.Output, bShape opgraph.Output, thresh opgraph.Output) (sumIndices opgraph.Output, sumValues opgraph.Output, sumShape opgraph.Output, err error) {
	op, err := Build(scope, "SparseAdd", []opgraph.Input{aIndices, aValues, aShape, bIndices, bValues, bShape, thresh}, nil)
	if err != nil {
		return
	}
	sumIndices = op.Output(0)
	sumValues = op.Output(1)
	sumShape = op.Output(2)
	return
}

// SparseConcat concatenates a list of SparseTensor along the specified dimension.
//
// Arguments:
//   - indices: 2-D. Indices of each input SparseTensor.
//   - values: 1-D. Non-empty values of each SparseTensor.
//   - shapes: 1-D. Shapes of each SparseTensor.
//   - concat_dim: Dimension to concatenate along. Must be in range [-rank, rank).
//
// Returns:
//   - output_indices: 2-D. Indices of the concatenated SparseTensor.
//   - output_values: 1-D. Non-empty values of the concatenated SparseTensor.
//   - output_shape: 1-D. Shape of the concatenated SparseTensor.
func SparseConcat(scope *Scope, indices []opgraph.Output, values []opgraph.Output, shapes_ []opgraph.Output, concatDim int64) (outputIndices opgraph.Output, outputValues opgraph.Output, outputShape opgraph.Output, err error) {
	attrs := map[string]any{"concat_dim": concatDim}
	op, err := Build(scope, "SparseConcat", []opgraph.Input{opgraph.OutputList(indices), opgraph.OutputList(values), opgraph.OutputList(shapes_)}, attrs)
	if err != nil {
		return
	}
	outputIndices = op.Output(0)
	outputValues = op.Output(1)
	outputShape = op.Output(2)
	return
}

// SparseReshape reshapes a SparseTensor to represent values in a new dense shape.
//
// Arguments:
//   - input_indices: 2-D. N x R_in matrix with the indices of non-empty values in a SparseTensor.
//   - input_shape: 1-D. R_in vector with the input SparseTensor's dense shape.
//   - new_shape: 1-D. R_out vector with the requested new dense shape.
//
// Returns:
//   - output_indices: 2-D. N x R_out matrix with the updated indices of non-empty values in the output SparseTensor.
//   - output_shape: 1-D. R_out vector with the full dense shape of the output SparseTensor.
func SparseReshape(scope *Scope, inputIndices opgraph.Output, inputShape opgraph.Output, newShape opgraph.Output) (outputIndices opgraph.Output, outputShape opgraph.Output, err error) {
	op, err := Build(scope, "SparseReshape", []opgraph.Input{inputIndices, inputShape, newShape}, nil)
	if err != nil {
		return
	}
	outputIndices = op.Output(0)
	outputShape = op.Output(1)
	return
}

// SparseSegmentSum computes the sum along sparse segments of a tensor.
//
// Arguments:
//   - indices: A 1-D tensor. Has same rank as segment_ids.
//   - segment_ids: A 1-D tensor. Values should be sorted and can be repeated.
//
// Returns:
//   - output: Has same shape as data, except for dimension 0 which has size k, the number of segments.
func SparseSegmentSum(scope *Scope, data opgraph.Output, indices opgraph.Output, segmentIds opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "SparseSegmentSum", []opgraph.Input{data, indices, segmentIds}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// SparseSoftmaxCrossEntropyWithLogits computes softmax cross entropy cost and gradients to backpropagate.
//
// Unlike SoftmaxCrossEntropyWithLogits, this operation does not accept a matrix of label
// probabilities, but rather a single label per row of features.
//
// Arguments:
//   - features: batch_size x num_classes matrix.
//   - labels: batch_size vector with values in [0, num_classes).
//
// Returns:
//   - loss: Per example loss (batch_size vector).
//   - backprop: backpropagated gradients (batch_size x num_classes matrix).
func SparseSoftmaxCrossEntropyWithLogits(scope *Scope, features opgraph.Output, labels opgraph.Output) (loss opgraph.Output, backprop opgraph.Output, err error) {
	op, err := Build(scope, "SparseSoftmaxCrossEntropyWithLogits", []opgraph.Input{features, labels}, nil)
	if err != nil {
		return
	}
	loss = op.Output(0)
	backprop = op.Output(1)
	return
}

// SparseSplit splits a SparseTensor into num_split tensors along one dimension.
//
// Arguments:
//   - split_dim: 0-D. The dimension along which to split. Must be in the range [0, rank(shape)).
//   - indices: 2-D tensor represents the indices of the sparse tensor.
//   - values: 1-D tensor represents the values of the sparse tensor.
//   - shape: 1-D. tensor represents the shape of the sparse tensor.
//   - num_split: The number of ways to split.
//
// Returns:
//   - output_indices: A list of 2-D tensors represents the indices of the output sparse tensors.
//   - output_values: A list of 1-D tensors represents the values of the output sparse tensors.
//   - output_shape: A list of 1-D tensors represents the shape of the output sparse tensors.
func SparseSplit(scope *Scope, splitDim opgraph.Output, indices opgraph.Output, values opgraph.Output, shape opgraph.Output, numSplit int64) (outputIndices []opgraph.Output, outputValues []opgraph.Output, outputShape []opgraph.Output, err error) {
	attrs := map[string]any{"num_split": numSplit}
	op, err := Build(scope, "SparseSplit", []opgraph.Input{splitDim, indices, values, shape}, attrs)
	if err != nil {
		return
	}
	var idx int
	if outputIndices, idx, err = makeOutputList(op, idx, "output_indices"); err != nil {
		return
	}
	if outputValues, idx, err = makeOutputList(op, idx, "output_values"); err != nil {
		return
	}
	if outputShape, _, err = makeOutputList(op, idx, "output_shape"); err != nil {
		return
	}
	return
}

// SparseTensorDenseMatMulAttr is an optional argument to SparseTensorDenseMatMul.
type SparseTensorDenseMatMulAttr func(optionalAttr)

// SparseTensorDenseMatMulAdjointA sets the optional adjoint_a attribute to value.
//
// value: Use the adjoint of A in the matrix multiply.
// If not specified, defaults to false
func SparseTensorDenseMatMulAdjointA(value bool) SparseTensorDenseMatMulAttr {
	return func(m optionalAttr) {
		m["adjoint_a"] = value
	}
}

// SparseTensorDenseMatMulAdjointB sets the optional adjoint_b attribute to value.
//
// value: Use the adjoint of B in the matrix multiply.
// If not specified, defaults to false
func SparseTensorDenseMatMulAdjointB(value bool) SparseTensorDenseMatMulAttr {
	return func(m optionalAttr) {
		m["adjoint_b"] = value
	}
}

// SparseTensorDenseMatMul multiplies SparseTensor (of rank 2) A by dense matrix B.
//
// Arguments:
//   - a_indices: 2-D. The indices of the SparseTensor, size [nnz, 2] Matrix.
//   - a_values: 1-D. The values of the SparseTensor, size [nnz] Vector.
//   - a_shape: 1-D. The shape of the SparseTensor, size [2] Vector.
//   - b: 2-D. A dense Matrix.
func SparseTensorDenseMatMul(scope *Scope, aIndices opgraph.Output, aValues opgraph.Output, aShape opgraph.Output, b opgraph.Output, optional ...SparseTensorDenseMatMulAttr) (product opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "SparseTensorDenseMatMul", []opgraph.Input{aIndices, aValues, aShape, b}, attrs)
	if err != nil {
		return
	}
	product = op.Output(0)
	return
}

// SparseToDenseAttr is an optional argument to SparseToDense.
type SparseToDenseAttr func(optionalAttr)

// SparseToDenseValidateIndices sets the optional validate_indices attribute to value.
//
// value: If true, indices are checked to make sure they are sorted in lexicographic order and that there are no repeats.
// If not specified, defaults to true
func SparseToDenseValidateIndices(value bool) SparseToDenseAttr {
	return func(m optionalAttr) {
		m["validate_indices"] = value
	}
}

// SparseToDense converts a sparse representation into a dense tensor.
//
// Arguments:
//   - sparse_indices: 0-D, 1-D, or 2-D. The indices of the sparse values.
//   - output_shape: 1-D. Shape of the dense output tensor.
//   - sparse_values: 1-D. Values corresponding to each row of sparse_indices, or a scalar value to be used for all sparse indices.
//   - default_value: Scalar value to set for indices not specified in sparse_indices.
//
// Returns:
//   - dense: Dense output tensor of shape output_shape.
func SparseToDense(scope *Scope, sparseIndices opgraph.Output, outputShape opgraph.Output, sparseValues opgraph.Output, defaultValue opgraph.Output, optional ...SparseToDenseAttr) (dense opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "SparseToDense", []opgraph.Input{sparseIndices, outputShape, sparseValues, defaultValue}, attrs)
	if err != nil {
		return
	}
	dense = op.Output(0)
	return
}

// Split splits a tensor into num_split tensors along one dimension.
//
// Arguments:
//   - axis: 0-D. The dimension along which to split.
//   - value: The tensor to split.
//   - num_split: The number of ways to split. Must evenly divide value.shape[split_dim].
//
// Returns:
//   - output: Identically shaped tensors, whose shape matches that of value except along axis.
func Split(scope *Scope, axis opgraph.Output, value opgraph.Output, numSplit int64) (output []opgraph.Output, err error) {
	attrs := map[string]any{"num_split": numSplit}
	op, err := Build(scope, "Split", []opgraph.Input{axis, value}, attrs)
	if err != nil {
		return
	}
	var idx int
	if output, _, err = makeOutputList(op, idx, "output"); err != nil {
		return
	}
	return
}

// SplitV splits a tensor into num_split tensors along one dimension.
//
// Arguments:
//   - value: The tensor to split.
//   - size_splits: List containing the sizes of each output tensor along the split dimension.
//   - axis: 0-D. The dimension along which to split.
//
// Returns:
//   - output: Tensors whose shape matches that of value except along axis.
func SplitV(scope *Scope, value opgraph.Output, sizeSplits opgraph.Output, axis opgraph.Output, numSplit int64) (output []opgraph.Output, err error) {
	attrs := map[string]any{"num_split": numSplit}
	op, err := Build(scope, "SplitV", []opgraph.Input{value, sizeSplits, axis}, attrs)
	if err != nil {
		return
	}
	var idx int
	if output, _, err = makeOutputList(op, idx, "output"); err != nil {
		return
	}
	return
}

// Sqrt computes square root of x element-wise.
func Sqrt(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Sqrt", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Square computes square of x element-wise.
func Square(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Square", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// SquaredDifference returns (x - y)(x - y) element-wise.
func SquaredDifference(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "SquaredDifference", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// SqueezeAttr is an optional argument to Squeeze.
type SqueezeAttr func(optionalAttr)

// SqueezeAxis sets the optional axis attribute to value.
//
// value: If specified, only squeezes the dimensions listed. The dimension index starts at 0.
// If not specified, defaults to []
func SqueezeAxis(value []int64) SqueezeAttr {
	return func(m optionalAttr) {
		m["axis"] = value
	}
}

// Squeeze removes dimensions of size 1 from the shape of a tensor.
//
// Arguments:
//   - input: The input to squeeze.
func Squeeze(scope *Scope, input opgraph.Output, optional ...SqueezeAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Squeeze", []opgraph.Input{input}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// StatelessRandomUniformAttr is an optional argument to StatelessRandomUniform.
type StatelessRandomUniformAttr func(optionalAttr)

// StatelessRandomUniformDtype sets the optional dtype attribute to value.
//
// value: The type of the output.
// If not specified, defaults to float32
func StatelessRandomUniformDtype(value dtypes.DType) StatelessRandomUniformAttr {
	return func(m optionalAttr) {
		m["dtype"] = value
	}
}

// StatelessRandomUniform outputs deterministic pseudorandom values from a uniform distribution.
//
// The outputs are a deterministic function of shape and seed.
//
// Arguments:
//   - shape: The shape of the output tensor.
//   - seed: 2 seeds (shape [2]).
//
// Returns:
//   - output: Random values with specified shape.
func StatelessRandomUniform(scope *Scope, shape opgraph.Output, seed opgraph.Output, optional ...StatelessRandomUniformAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "StatelessRandomUniform", []opgraph.Input{shape, seed}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// StopGradient stops gradient computation.
func StopGradient(scope *Scope, input opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "StopGradient", []opgraph.Input{input}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// StridedSliceAttr is an optional argument to StridedSlice.
type StridedSliceAttr func(optionalAttr)

// StridedSliceBeginMask sets the optional begin_mask attribute to value.
//
// value: A bitmask where a bit i being 1 means to ignore the begin value and use the largest interval possible.
// If not specified, defaults to 0
func StridedSliceBeginMask(value int64) StridedSliceAttr {
	return func(m optionalAttr) {
		m["begin_mask"] = value
	}
}

// StridedSliceEndMask sets the optional end_mask attribute to value.
//
// value: Analogous to begin_mask.
// If not specified, defaults to 0
func StridedSliceEndMask(value int64) StridedSliceAttr {
	return func(m optionalAttr) {
		m["end_mask"] = value
	}
}

// StridedSliceEllipsisMask sets the optional ellipsis_mask attribute to value.
//
// value: A bitmask where bit i being 1 means the i'th position is actually an ellipsis.
// If not specified, defaults to 0
func StridedSliceEllipsisMask(value int64) StridedSliceAttr {
	return func(m optionalAttr) {
		m["ellipsis_mask"] = value
	}
}

// StridedSliceNewAxisMask sets the optional new_axis_mask attribute to value.
//
// value: A bitmask where bit i being 1 means the i'th specification creates a new shape 1 dimension.
// If not specified, defaults to 0
func StridedSliceNewAxisMask(value int64) StridedSliceAttr {
	return func(m optionalAttr) {
		m["new_axis_mask"] = value
	}
}

// StridedSliceShrinkAxisMask sets the optional shrink_axis_mask attribute to value.
//
// value: A bitmask where bit i implies that the i'th specification should shrink the dimensionality.
// If not specified, defaults to 0
func StridedSliceShrinkAxisMask(value int64) StridedSliceAttr {
	return func(m optionalAttr) {
		m["shrink_axis_mask"] = value
	}
}

// StridedSlice returns a strided slice from input.
func StridedSlice(scope *Scope, input opgraph.Output, begin opgraph.Output, end opgraph.Output, strides opgraph.Output, optional ...StridedSliceAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "StridedSlice", []opgraph.Input{input, begin, end, strides}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Sub returns x - y element-wise.
//
// Both inputs must have the same dtype. Broadcasting of the shapes is done by the executor.
func Sub(scope *Scope, x opgraph.Output, y opgraph.Output) (z opgraph.Output, err error) {
	op, err := Build(scope, "Sub", []opgraph.Input{x, y}, nil)
	if err != nil {
		return
	}
	z = op.Output(0)
	return
}

// SumAttr is an optional argument to Sum.
type SumAttr func(optionalAttr)

// SumKeepDims sets the optional keep_dims attribute to value.
//
// value: If true, retain reduced dimensions with length 1.
// If not specified, defaults to false
func SumKeepDims(value bool) SumAttr {
	return func(m optionalAttr) {
		m["keep_dims"] = value
	}
}

// Sum computes the sum of elements across dimensions of a tensor.
//
// Reduces input along the dimensions given in axis. Unless keep_dims is true, the rank of the
// tensor is reduced by 1 for each entry in axis.
//
// Arguments:
//   - input: The tensor to reduce.
//   - axis: The dimensions to reduce. Must be in the range [-rank(input), rank(input)).
//
// Returns:
//   - output: The reduced tensor.
func Sum(scope *Scope, input opgraph.Output, axis opgraph.Output, optional ...SumAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Sum", []opgraph.Input{input, axis}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Switch forwards data to the output port determined by pred.
//
// Arguments:
//   - data: The tensor to be forwarded to the appropriate output.
//   - pred: A scalar that specifies which output port will receive data.
//
// Returns:
//   - output_false: If pred is false, data will be forwarded to this output.
//   - output_true: If pred is true, data will be forwarded to this output.
func Switch(scope *Scope, data opgraph.Output, pred opgraph.Output) (outputFalse opgraph.Output, outputTrue opgraph.Output, err error) {
	op, err := Build(scope, "Switch", []opgraph.Input{data, pred}, nil)
	if err != nil {
		return
	}
	outputFalse = op.Output(0)
	outputTrue = op.Output(1)
	return
}

// Tanh computes hyperbolic tangent of x element-wise.
func Tanh(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Tanh", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// Tile constructs a tensor by tiling a given tensor.
//
// Arguments:
//   - input: Can be of any rank.
//   - multiples: 1-D. Length must be the same as the number of dimensions in input.
func Tile(scope *Scope, input opgraph.Output, multiples opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "Tile", []opgraph.Input{input, multiples}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// Timestamp provides the time since epoch in seconds.
func Timestamp(scope *Scope) (ts opgraph.Output, err error) {
	op, err := Build(scope, "Timestamp", []opgraph.Input{}, nil)
	if err != nil {
		return
	}
	ts = op.Output(0)
	return
}

// TopKV2Attr is an optional argument to TopKV2.
type TopKV2Attr func(optionalAttr)

// TopKV2Sorted sets the optional sorted attribute to value.
//
// value: If true the resulting k elements will be sorted by the values in descending order.
// If not specified, defaults to true
func TopKV2Sorted(value bool) TopKV2Attr {
	return func(m optionalAttr) {
		m["sorted"] = value
	}
}

// TopKV2 finds values and indices of the k largest elements for the last dimension.
//
// Arguments:
//   - input: 1-D or higher with last dimension at least k.
//   - k: 0-D. Number of top elements to look for along the last dimension.
//
// Returns:
//   - values: The k largest elements along each last dimensional slice.
//   - indices: The indices of values within the last dimension of input.
func TopKV2(scope *Scope, input opgraph.Output, k opgraph.Output, optional ...TopKV2Attr) (values opgraph.Output, indices opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "TopKV2", []opgraph.Input{input, k}, attrs)
	if err != nil {
		return
	}
	values = op.Output(0)
	indices = op.Output(1)
	return
}

// Transpose shuffles dimensions of x according to a permutation.
func Transpose(scope *Scope, x opgraph.Output, perm opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "Transpose", []opgraph.Input{x, perm}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

// TruncatedNormalAttr is an optional argument to TruncatedNormal.
type TruncatedNormalAttr func(optionalAttr)

// TruncatedNormalSeed sets the optional seed attribute to value.
//
// value: If either seed or seed2 are set to be non-zero, the random number generator is seeded by the given seed.
// If not specified, defaults to 0
func TruncatedNormalSeed(value int64) TruncatedNormalAttr {
	return func(m optionalAttr) {
		m["seed"] = value
	}
}

// TruncatedNormalSeed2 sets the optional seed2 attribute to value.
//
// value: A second seed to avoid seed collision.
// If not specified, defaults to 0
func TruncatedNormalSeed2(value int64) TruncatedNormalAttr {
	return func(m optionalAttr) {
		m["seed2"] = value
	}
}

// TruncatedNormal outputs random values from a truncated normal distribution.
//
// Values whose magnitude is more than 2 standard deviations from the mean are dropped and re-picked.
//
// Arguments:
//   - shape: The shape of the output tensor.
//   - dtype: The type of the output.
//
// Returns:
//   - output: A tensor of the specified shape filled with random values.
func TruncatedNormal(scope *Scope, shape opgraph.Output, dtype dtypes.DType, optional ...TruncatedNormalAttr) (output opgraph.Output, err error) {
	attrs := map[string]any{"dtype": dtype}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "TruncatedNormal", []opgraph.Input{shape}, attrs)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// UniqueAttr is an optional argument to Unique.
type UniqueAttr func(optionalAttr)

// UniqueOutIdx sets the optional out_idx attribute to value.
//
// If not specified, defaults to int32
func UniqueOutIdx(value dtypes.DType) UniqueAttr {
	return func(m optionalAttr) {
		m["out_idx"] = value
	}
}

// Unique finds unique elements in a 1-D tensor.
//
// This operation returns a tensor y containing all of the unique elements of x sorted in the same
// order that they occur in x, and a tensor idx the same size as x that contains the index of each
// value of x in the unique output y.
//
// Arguments:
//   - x: 1-D.
//
// Returns:
//   - y: 1-D.
//   - idx: 1-D.
func Unique(scope *Scope, x opgraph.Output, optional ...UniqueAttr) (y opgraph.Output, idx_ opgraph.Output, err error) {
	attrs := map[string]any{}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Unique", []opgraph.Input{x}, attrs)
	if err != nil {
		return
	}
	y = op.Output(0)
	idx_ = op.Output(1)
	return
}

// UnpackAttr is an optional argument to Unpack.
type UnpackAttr func(optionalAttr)

// UnpackAxis sets the optional axis attribute to value.
//
// value: Dimension along which to unpack. Negative values wrap around.
// If not specified, defaults to 0
func UnpackAxis(value int64) UnpackAttr {
	return func(m optionalAttr) {
		m["axis"] = value
	}
}

// Unpack unpacks a given dimension of a rank-R tensor into num rank-(R-1) tensors.
//
// Arguments:
//   - value: 1-D or higher, with axis dimension size equal to num.
//
// Returns:
//   - output: The list of tensors unpacked from value.
func Unpack(scope *Scope, value opgraph.Output, num int64, optional ...UnpackAttr) (output []opgraph.Output, err error) {
	attrs := map[string]any{"num": num}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "Unpack", []opgraph.Input{value}, attrs)
	if err != nil {
		return
	}
	var idx int
	if output, _, err = makeOutputList(op, idx, "output"); err != nil {
		return
	}
	return
}

// UnsortedSegmentSum computes the sum along segments of a tensor.
//
// Arguments:
//   - segment_ids: A tensor whose shape is a prefix of data.shape.
//
// Returns:
//   - output: Has same shape as data, except for the first segment_ids.rank dimensions, which are replaced with a single dimension which has size num_segments.
func UnsortedSegmentSum(scope *Scope, data opgraph.Output, segmentIds opgraph.Output, numSegments opgraph.Output) (output opgraph.Output, err error) {
	op, err := Build(scope, "UnsortedSegmentSum", []opgraph.Input{data, segmentIds, numSegments}, nil)
	if err != nil {
		return
	}
	output = op.Output(0)
	return
}

// VariableV2Attr is an optional argument to VariableV2.
type VariableV2Attr func(optionalAttr)

// VariableV2Container sets the optional container attribute to value.
//
// value: If non-empty, this variable is placed in the given container.
// If not specified, defaults to ""
func VariableV2Container(value string) VariableV2Attr {
	return func(m optionalAttr) {
		m["container"] = value
	}
}

// VariableV2SharedName sets the optional shared_name attribute to value.
//
// value: If non-empty, this variable is named in the given bucket with this shared_name.
// If not specified, defaults to ""
func VariableV2SharedName(value string) VariableV2Attr {
	return func(m optionalAttr) {
		m["shared_name"] = value
	}
}

// VariableV2 holds state in the form of a tensor that persists across steps.
//
// Arguments:
//   - shape: The shape of the variable tensor.
//   - dtype: The type of elements in the variable tensor.
//
// Returns:
//   - ref: A reference to the variable tensor.
func VariableV2(scope *Scope, shape shapes.Shape, dtype dtypes.DType, optional ...VariableV2Attr) (ref opgraph.Output, err error) {
	attrs := map[string]any{"shape": shape, "dtype": dtype}
	for _, opt := range optional {
		opt(attrs)
	}
	op, err := Build(scope, "VariableV2", []opgraph.Input{}, attrs)
	if err != nil {
		return
	}
	ref = op.Output(0)
	return
}

// Where returns locations of nonzero / true values in a tensor.
//
// This operation returns the coordinates of true elements in input. The coordinates are returned
// in a 2-D tensor where the first dimension (rows) represents the number of true elements, and the
// second dimension (columns) represents the coordinates of the true elements.
func Where(scope *Scope, input opgraph.Output) (index opgraph.Output, err error) {
	op, err := Build(scope, "Where", []opgraph.Input{input}, nil)
	if err != nil {
		return
	}
	index = op.Output(0)
	return
}

// ZerosLike returns a tensor of zeros with the same shape and type as x.
//
// Arguments:
//   - x: a tensor of type T.
//
// Returns:
//   - y: a tensor of the same shape and type as x but filled with zeros.
func ZerosLike(scope *Scope, x opgraph.Output) (y opgraph.Output, err error) {
	op, err := Build(scope, "ZerosLike", []opgraph.Input{x}, nil)
	if err != nil {
		return
	}
	y = op.Output(0)
	return
}

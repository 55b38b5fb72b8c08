package ir

import "io"

// reduceViaTemp implements the reduce behavior shared by every Operator
// node (Arithmetic, UnaryOperator, Access): gen the expression, assign its
// textual form to a fresh temporary, and return that temporary. gen is
// expected to already be the result of the node's own Gen call.
func reduceViaTemp(ctx *Context, out io.Writer, gen Expression) Expression {
	temp := ctx.NewTemp(gen.Type())
	emitLine(out, "%s = %s", temp.String(), gen.String())
	return temp
}

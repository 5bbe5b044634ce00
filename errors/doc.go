/*
Package errors implements the error handling used across gate.

Reuse the root errors declared here whenever possible and register a custom
root error only when an extension needs a distinct kind. Each root error has
an ABCI code that is returned to the client, so that a caller can tell an
authorization failure from a below-threshold rejection without parsing
messages.

Create runtime error instances with ErrXyz.New("..."), ErrXyz.Newf or
errors.Wrap(err, "...") at the point of failure. The first wrap attaches a
stack trace. Outer wraps only add context.

	%s  is the error message
	%+v is the message followed by the stack trace
*/
package errors

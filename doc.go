/*
Package gate defines the common interfaces that tie together the
subpackages of this repository, as well as implementations of some of the
simpler components (when interfaces would be too much overhead).

A request is a Tx carrying a single Msg. The Tx travels through a chain of
Decorators (authentication, logging, savepoints) down to the Handler that
the Msg path routes to. Every Handler implements Check, which only validates
a request, and Deliver, which validates it again and applies the effect.

We pass context through context.Context between app, middleware and
handlers. Each piece of information has a pair of functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, chain id).
*/
package gate

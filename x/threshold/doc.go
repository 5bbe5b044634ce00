/*
Package threshold implements a guarded transfer between two fixed accounts.

A single configuration record holds an authority, a source, a destination
and a minimum amount. Value can only move from the source to the
destination, only when the source signs the request and only when the
amount is at least the configured threshold. The authority may change the
threshold and replace the source/destination pair.

The record lives under a deterministic address derived from a fixed
namespace and a derivation tag. The tag is persisted with the record and
every handler verifies it before the record is used.
*/
package threshold

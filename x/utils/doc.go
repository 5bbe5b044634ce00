/*
Package utils contains decorators that are shared by every gate
application: panic recovery, logging, savepoints and key tagging.
None of them depend on a concrete message type.
*/
package utils

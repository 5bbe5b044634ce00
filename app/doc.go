/*
Package app contains the glue turning gate handlers into an ABCI
application: a router dispatching messages by path, decorator chaining,
the commit store holding the check and deliver caches, and the BaseApp
implementing abci.Application.
*/
package app

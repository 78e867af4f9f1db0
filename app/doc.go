/*
Package app glues the treasury extensions into a single application.

An Application holds the committed store and two cache layers, one for
checking and one for executing requests. Every executed request runs in
its own cache wrap: its changes are written to the deliver layer only if
the handler succeeds. Commit persists the deliver layer.

Requests are routed by path. Decorators are chained in front of the router
with ChainDecorators.
*/
package app

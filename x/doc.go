/*
Package x holds the shared pieces of the treasury extensions: the
Authenticator used to learn who signed a request and signer counting.

Sub-packages implement the extensions themselves. Each one registers its
handlers on a router and can be combined with the others in app.
*/
package x

/*
Package mint creates the treasury token.

The token is created only once. The whole, fixed supply is issued to the
treasury wallet in the same step, and no further minting is possible
through the treasury.
*/
package mint

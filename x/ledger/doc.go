/*
Package ledger is a token ledger kept in the application store.

It implements the treasury.TokenLedger interface, native balances used for
rent exemption and a rent schedule. The treasury itself never depends on
this package. It allows running the treasury without an external host, for
example from the command line or in tests.

Token accounts created implicitly, when tokens are issued or transferred to
an address that holds no token account yet, are owned by that address.
*/
package ledger

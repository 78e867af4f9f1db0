/*
Package coin provides checked arithmetic for token amounts expressed in base
units, and conversion between base units and the human readable decimal
representation.

All operations fail with ErrOverflow instead of wrapping around.
*/
package coin

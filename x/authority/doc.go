/*
Package authority restricts the treasury dispatch to a single controlling
identity.

The authority address is part of the genesis configuration and is stored
once, under the "authority" configuration key. A request passes the gate
only if its first account is the authority and the host verified its
signature.
*/
package authority

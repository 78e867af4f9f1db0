/*
Package distribution implements the treasury dispatch.

A dispatch request either initializes the mint, when it carries no
payload, or distributes the token supply among the destination accounts.
Any non empty payload means distribution. Both require the signature of
the treasury wallet. A distribution runs a chain of validators and only
when all of them pass are the transfers requested from the ledger:

	destination count -> wallet signer -> source mint
	destination mints -> rent exemption -> distribution day
	(period) -> engine

Each destination receives a share of the total supply determined by its
position in the request and the tier table. Amounts are expressed in
basis points and rounded down.
*/
package distribution

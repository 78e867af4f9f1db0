/*
Package multisig implements a threshold approval of a request.

The approval holds if at least the required number of distinct accounts of
the request are verified signers. No approval state is stored.
*/
package multisig

/*
Package errors implements the error taxonomy of the treasury.

Every error returned to a caller should wrap one of the root errors registered
in this package. A root error carries a stable numeric code that callers can
rely on. Codes 1 to 9 describe treasury failures (day gate, destination count,
invalid accounts, balance, authority, rent exemption, votes, multisig approval
and period guard). Codes starting at 100 are generic failures shared by all
packages.

Create errors at the point of failure using ErrXyz.New("...") or
errors.Wrap(err, "...") so that a stack trace is attached. Only the first wrap
records the stack trace.

Once you have an error, you can use fmt to get more context

	%s is just the error message
	%+v is the full stack trace

Use ResultInfo to convert any error into the code and log message exposed to
the caller.
*/
package errors

package multisig

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// Approve returns ErrMultiSigApproval unless at least threshold distinct
// candidates are verified signers. A zero threshold is rejected with
// ErrInput, same as in ApproveMsg.
func Approve(ctx treasury.Context, auth x.Authenticator, candidates []treasury.Address, threshold uint32) error {
	if threshold == 0 {
		return errors.Wrap(errors.ErrInput, "threshold must be greater than 0")
	}
	n := x.CountSigners(ctx, auth, candidates)
	if uint64(n) < uint64(threshold) {
		return errors.Wrapf(errors.ErrMultiSigApproval, "%d of %d required signatures", n, threshold)
	}
	return nil
}

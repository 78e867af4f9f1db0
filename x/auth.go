package x

import (
	"github.com/iov-one/treasury"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding a single signer source for all extensions.
type Authenticator interface {
	// GetSigners reveals all verified signers,
	// you may want HasAddress helper
	GetSigners(treasury.Context) []treasury.Address
	// HasAddress checks if any signer matches this address
	HasAddress(treasury.Context, treasury.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetSigners combines all signers from all Authenticators, without
// duplicates.
func (m MultiAuth) GetSigners(ctx treasury.Context) []treasury.Address {
	var res []treasury.Address
	for _, impl := range m.impls {
		for _, a := range impl.GetSigners(ctx) {
			if !containsAddress(res, a) {
				res = append(res, a)
			}
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first signer if any, otherwise nil
func MainSigner(ctx treasury.Context, auth Authenticator) treasury.Address {
	signers := auth.GetSigners(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx treasury.Context, auth Authenticator, required []treasury.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// CountSigners returns how many distinct addresses of candidates are
// verified signers in the context. Repeated candidates are counted once.
func CountSigners(ctx treasury.Context, auth Authenticator, candidates []treasury.Address) int {
	var seen []treasury.Address
	for _, c := range candidates {
		if containsAddress(seen, c) {
			continue
		}
		seen = append(seen, c)
	}

	var n int
	for _, c := range seen {
		if auth.HasAddress(ctx, c) {
			n++
		}
	}
	return n
}

// HasNAddresses returns true if at least n distinct elements in required
// are also in context.
// Useful for threshold conditions (1 of 3, 3 of 5, etc...)
func HasNAddresses(ctx treasury.Context, auth Authenticator, required []treasury.Address, n int) bool {
	if n <= 0 {
		return true
	}
	return CountSigners(ctx, auth, required) >= n
}

func containsAddress(list []treasury.Address, a treasury.Address) bool {
	for _, x := range list {
		if x.Equals(a) {
			return true
		}
	}
	return false
}

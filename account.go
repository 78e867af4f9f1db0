package treasury

// Account is the read only view of an account passed with a request. It is
// a snapshot taken when the request is created and never changes while the
// request is processed.
type Account interface {
	// Address returns the identity of the account.
	Address() Address
	// IsSigner returns true if the request signature of this account was
	// verified by the host.
	IsSigner() bool
	// Balance returns the native balance, used to determine rent
	// exemption.
	Balance() uint64
	// DataLen returns the length of the account data.
	DataLen() int
	// Data returns the raw account data.
	Data() []byte
}

// AccountInfo is the default Account implementation.
type AccountInfo struct {
	Key      Address `json:"address"`
	Signer   bool    `json:"signer,omitempty"`
	Lamports uint64  `json:"balance,omitempty"`
	RawData  []byte  `json:"data,omitempty"`
}

var _ Account = (*AccountInfo)(nil)

func (a *AccountInfo) Address() Address { return a.Key }
func (a *AccountInfo) IsSigner() bool   { return a.Signer }
func (a *AccountInfo) Balance() uint64  { return a.Lamports }
func (a *AccountInfo) DataLen() int     { return len(a.RawData) }
func (a *AccountInfo) Data() []byte     { return a.RawData }

// Addresses returns the addresses of all given accounts, preserving the
// order.
func Addresses(accounts []Account) []Address {
	res := make([]Address, len(accounts))
	for i, a := range accounts {
		res[i] = a.Address()
	}
	return res
}

package treasury

import (
	"encoding/json"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury/errors"
)

// Handler is a core engine that can process a few specific requests.
// This could represent "distribute", or "vote on a proposal"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a request.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, req *Request) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a request.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, req *Request) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authorization, or logging, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, req *Request, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, req *Request, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult captures any non-error result of checking a request.
type CheckResult struct {
	// Log is human-readable informational string
	Log string
}

// DeliverResult captures any non-error result of executing a request.
type DeliverResult struct {
	// Data is a machine-parseable return value
	Data []byte
	// Log is human-readable informational string
	Log string
}

// Msg is a payload of a request.
type Msg interface {
	proto.Message

	// Path is the route the message is handled by.
	Path() string

	// Validate performs a sanity checks on the message content.
	Validate() error
}

// LoadMsg decodes the request payload into dst and validates it.
func LoadMsg(req *Request, dst Msg) error {
	if req.Path != dst.Path() {
		return errors.Wrapf(errors.ErrType, "path %q cannot be decoded as %T", req.Path, dst)
	}
	if err := proto.Unmarshal(req.Payload, dst); err != nil {
		return errors.Wrapf(errors.ErrInput, "decode %T: %s", dst, err)
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// NewRequest builds a request for given message.
func NewRequest(msg Msg, accounts ...Account) (*Request, error) {
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "encode %T: %s", msg, err)
	}
	return &Request{Path: msg.Path(), Accounts: accounts, Payload: raw}, nil
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "option %q: %s", key, err)
	}
	return nil
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

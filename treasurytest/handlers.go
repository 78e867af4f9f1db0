package treasurytest

import "github.com/iov-one/treasury"

// Handler is a mock implementation of the treasury.Handler interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult treasury.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult treasury.DeliverResult
	DeliverErr    error
}

var _ treasury.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes a key/value pair to the store and then returns Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ treasury.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{}, h.Err
}

func (h WriteHandler) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, h.Err
}

// PanicHandler always panics with given value.
type PanicHandler struct {
	Value interface{}
}

var _ treasury.Handler = PanicHandler{}

func (h PanicHandler) Check(treasury.Context, treasury.KVStore, *treasury.Request) (*treasury.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(treasury.Context, treasury.KVStore, *treasury.Request) (*treasury.DeliverResult, error) {
	panic(h.Value)
}

package treasurytest

import "github.com/iov-one/treasury"

// Decorator is a mock implementation of the treasury.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ treasury.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request, next treasury.Checker) (*treasury.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, req)
}

func (d *Decorator) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request, next treasury.Deliverer) (*treasury.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, req)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with one decorator and returns it
// as a single handler.
func Decorate(h treasury.Handler, d treasury.Decorator) treasury.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn treasury.Handler
	dc treasury.Decorator
}

var _ treasury.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	return d.dc.Check(ctx, db, req, d.hn)
}

func (d *decoratedHandler) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, req, d.hn)
}

package errors

// Treasury errors. Codes of this group are a stable contract with callers and
// must never change.
var (
	// ErrNotFirstOfMonth is returned when a distribution is attempted on any
	// day other than the first day of a calendar month.
	ErrNotFirstOfMonth = Register(1, "not first day of month")

	// ErrInsufficientAccounts is returned when a distribution declares
	// fewer destination accounts than required.
	ErrInsufficientAccounts = Register(2, "insufficient destination accounts")

	// ErrInvalidAccount is returned when a source or destination account
	// does not belong to the distributed mint or cannot be decoded.
	ErrInvalidAccount = Register(3, "invalid account")

	// ErrInsufficientBalance is returned when the treasury cannot cover
	// the planned distribution.
	ErrInsufficientBalance = Register(4, "insufficient treasury balance")

	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(5, "unauthorized")

	// ErrNotRentExempt is returned when an account balance does not cover
	// the storage cost exemption minimum.
	ErrNotRentExempt = Register(6, "account not rent exempt")

	// ErrInvalidVote is returned when a vote is cast by a non signer or
	// repeated while duplicate votes are rejected.
	ErrInvalidVote = Register(7, "invalid vote")

	// ErrMultiSigApproval is returned when not enough candidates signed.
	ErrMultiSigApproval = Register(8, "multisig approval failed")

	// ErrAlreadyDistributed is returned when the once per period guard is
	// enabled and the current period was already distributed.
	ErrAlreadyDistributed = Register(9, "already distributed in this period")
)

// Generic errors.
var (
	// ErrInput stands for general input problems indication.
	ErrInput = Register(100, "invalid input")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(101, "not found")

	// ErrDuplicate is returned when there is a record already that has the
	// same unique key.
	ErrDuplicate = Register(102, "duplicate")

	// ErrModel is returned whenever a model is invalid and cannot be used
	// (ie. persisted).
	ErrModel = Register(103, "invalid model")

	// ErrState is returned when an object is in invalid state.
	ErrState = Register(104, "invalid state")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(105, "invalid type")

	// ErrOverflow is returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(106, "arithmetic overflow")

	// ErrDatabase is returned when a storage operation fails.
	ErrDatabase = Register(107, "database")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(108, "value is empty")

	// ErrAmount stands for invalid amount of whatever.
	ErrAmount = Register(109, "invalid amount")

	// ErrHuman is returned when application reaches a code path which
	// should not ever be reached if the code was written as expected.
	ErrHuman = Register(110, "coding error")

	// ErrIteratorDone is returned by an iterator when there are no more
	// entries to read.
	ErrIteratorDone = Register(111, "iterator done")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

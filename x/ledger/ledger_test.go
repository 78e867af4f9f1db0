package ledger

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLedger(t *testing.T) {
	Convey("Test ledger works as intended", t, func() {
		db := store.MemStore()
		l := NewLedger()

		mint := treasurytest.SequenceAddr(1)
		wallet := treasurytest.SequenceAddr(2)
		alice := treasurytest.SequenceAddr(3)
		bob := treasurytest.SequenceAddr(4)

		Convey("Minting requires an initialized mint", func() {
			err := l.MintTo(db, mint, wallet, 10, wallet)
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)
		})

		Convey("When the mint is initialized", func() {
			err := l.InitializeMint(db, mint, 6, wallet, nil)
			So(err, ShouldBeNil)

			data, err := l.Mint(db, mint)
			So(err, ShouldBeNil)
			So(data.Decimals, ShouldEqual, 6)
			So(data.Supply, ShouldEqual, 0)
			So(data.Initialized, ShouldBeTrue)

			Convey("It cannot be initialized again", func() {
				err := l.InitializeMint(db, mint, 6, wallet, nil)
				So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
			})

			Convey("Only the authority can mint", func() {
				err := l.MintTo(db, mint, wallet, 10, alice)
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			})

			Convey("When the supply is issued", func() {
				err := l.MintTo(db, mint, wallet, 1000, wallet)
				So(err, ShouldBeNil)

				data, err := l.Mint(db, mint)
				So(err, ShouldBeNil)
				So(data.Supply, ShouldEqual, 1000)

				acc, err := l.TokenAccount(db, wallet)
				So(err, ShouldBeNil)
				So(acc.Amount, ShouldEqual, 1000)
				So(acc.Owner, ShouldResemble, wallet)

				Convey("The owner can transfer", func() {
					So(l.Transfer(db, wallet, alice, 300, wallet), ShouldBeNil)

					src, err := l.TokenAccount(db, wallet)
					So(err, ShouldBeNil)
					So(src.Amount, ShouldEqual, 700)
					dst, err := l.TokenAccount(db, alice)
					So(err, ShouldBeNil)
					So(dst.Amount, ShouldEqual, 300)
					So(dst.Mint, ShouldResemble, mint)
				})

				Convey("Others cannot transfer", func() {
					err := l.Transfer(db, wallet, alice, 300, alice)
					So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
				})

				Convey("Balance must cover the transfer", func() {
					err := l.Transfer(db, wallet, alice, 1001, wallet)
					So(errors.ErrInsufficientBalance.Is(err), ShouldBeTrue)
				})

				Convey("Token accounts of another mint are rejected", func() {
					other := treasurytest.SequenceAddr(9)
					So(l.InitializeMint(db, other, 6, bob, nil), ShouldBeNil)
					So(l.MintTo(db, other, bob, 5, bob), ShouldBeNil)

					err := l.Transfer(db, wallet, bob, 1, wallet)
					So(errors.ErrInvalidAccount.Is(err), ShouldBeTrue)
				})

				Convey("Holders are listed by mint", func() {
					So(l.Transfer(db, wallet, bob, 1, wallet), ShouldBeNil)
					var holders []treasury.Address
					err := l.Holders(db, mint, func(addr treasury.Address, acc *treasury.TokenAccountData) error {
						holders = append(holders, addr)
						return nil
					})
					So(err, ShouldBeNil)
					So(len(holders), ShouldEqual, 2)
				})
			})

			Convey("Accounts can be opened explicitly", func() {
				So(l.OpenAccount(db, alice, mint, bob), ShouldBeNil)
				acc, err := l.TokenAccount(db, alice)
				So(err, ShouldBeNil)
				So(acc.Owner, ShouldResemble, bob)
				So(acc.Amount, ShouldEqual, 0)

				err = l.OpenAccount(db, alice, mint, bob)
				So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
			})
		})

		Convey("Snapshots reflect the stored state", func() {
			So(l.Fund(db, alice, 5000), ShouldBeNil)
			So(l.Fund(db, alice, 5000), ShouldBeNil)

			acc, err := l.Snapshot(db, alice, true)
			So(err, ShouldBeNil)
			So(acc.Balance(), ShouldEqual, 10000)
			So(acc.IsSigner(), ShouldBeTrue)
			So(acc.DataLen(), ShouldEqual, 0)

			So(l.InitializeMint(db, mint, 6, wallet, nil), ShouldBeNil)
			So(l.MintTo(db, mint, alice, 42, wallet), ShouldBeNil)

			acc, err = l.Snapshot(db, alice, false)
			So(err, ShouldBeNil)
			token, err := treasury.LoadTokenAccount(acc)
			So(err, ShouldBeNil)
			So(token.Amount, ShouldEqual, 42)

			m, err := l.Snapshot(db, mint, false)
			So(err, ShouldBeNil)
			data, err := treasury.LoadMintData(m)
			So(err, ShouldBeNil)
			So(data.Supply, ShouldEqual, 42)
		})
	})
}

func TestRentSchedule(t *testing.T) {
	Convey("Test rent exemption", t, func() {
		r := DefaultRentSchedule()

		min, err := r.MinimumBalance(0)
		So(err, ShouldBeNil)
		So(min, ShouldEqual, 128*3480*2)

		min, err = r.MinimumBalance(165)
		So(err, ShouldBeNil)
		So(min, ShouldEqual, (128+165)*3480*2)

		So(r.IsExempt(min, 165), ShouldBeTrue)
		So(r.IsExempt(min-1, 165), ShouldBeFalse)
		So(r.IsExempt(^uint64(0), -1), ShouldBeFalse)

		huge := RentSchedule{OverheadBytes: 1, LamportsPerByteYear: ^uint64(0), ExemptionYears: 2}
		So(huge.IsExempt(^uint64(0), 0), ShouldBeFalse)
	})
}

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		alice := treasurytest.SequenceAddr(3)
		raw, err := json.Marshal([]interface{}{
			map[string]interface{}{"address": alice, "balance": 777},
		})
		So(err, ShouldBeNil)

		db := store.MemStore()
		var init Initializer
		So(init.FromGenesis(treasury.Options{"ledger": raw}, db), ShouldBeNil)

		bal, err := NewLedger().NativeBalance(db, alice)
		So(err, ShouldBeNil)
		So(bal, ShouldEqual, 777)
	})
}

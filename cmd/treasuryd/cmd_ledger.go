package main

import (
	"fmt"
	"strconv"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/spf13/cobra"
)

func newFundCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "fund <address> <lamports>",
		Short: "Add native balance to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			lamports, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return errors.Wrapf(errors.ErrInput, "lamports: %s", err)
			}
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()
			return n.update(func(db treasury.KVStore) error {
				return n.ledger.Fund(db, addr, lamports)
			})
		},
	}
}

func newOpenCommand(env *environment) *cobra.Command {
	var mintAddr, ownerAddr string
	cmd := &cobra.Command{
		Use:   "open <address>...",
		Short: "Open empty token accounts of the mint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addrs, err := parseAddresses(args)
			if err != nil {
				return err
			}
			mint, err := parseAddress(mintAddr)
			if err != nil {
				return errors.Wrap(err, "mint")
			}
			var owner treasury.Address
			if ownerAddr != "" {
				if owner, err = parseAddress(ownerAddr); err != nil {
					return errors.Wrap(err, "owner")
				}
			}
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()
			return n.update(func(db treasury.KVStore) error {
				for _, a := range addrs {
					o := owner
					if o == nil {
						o = a
					}
					if err := n.ledger.OpenAccount(db, a, mint, o); err != nil {
						return errors.Wrapf(err, "open %s", a)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&mintAddr, "mint", "", "mint address")
	cmd.Flags().StringVar(&ownerAddr, "owner", "", "owner of the accounts, defaults to the account itself")
	return cmd
}

func newTransferCommand(env *environment) *cobra.Command {
	var ownerAddr string
	cmd := &cobra.Command{
		Use:   "transfer <source> <destination> <amount>",
		Short: "Move tokens between two token accounts, amount in whole tokens",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			addrs, err := parseAddresses(args[:2])
			if err != nil {
				return err
			}
			source, dest := addrs[0], addrs[1]
			owner := source
			if ownerAddr != "" {
				if owner, err = parseAddress(ownerAddr); err != nil {
					return errors.Wrap(err, "owner")
				}
			}
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()
			return n.update(func(db treasury.KVStore) error {
				acc, err := n.ledger.TokenAccount(db, source)
				if err != nil {
					return errors.Wrap(err, "source")
				}
				mint, err := n.ledger.Mint(db, acc.Mint)
				if err != nil {
					return errors.Wrap(err, "mint")
				}
				amount, err := coin.ParseHuman(args[2], mint.Decimals)
				if err != nil {
					return errors.Wrap(err, "amount")
				}
				return n.ledger.Transfer(db, source, dest, amount, owner)
			})
		},
	}
	cmd.Flags().StringVar(&ownerAddr, "owner", "", "owner of the source account, defaults to the source itself")
	return cmd
}

func newBalanceCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Print the native and token balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()

			db := n.app.Query()
			native, err := n.ledger.NativeBalance(db, addr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lamports: %d\n", native)

			acc, err := n.ledger.TokenAccount(db, addr)
			switch {
			case errors.ErrNotFound.Is(err):
				return nil
			case err != nil:
				return err
			}
			mint, err := n.ledger.Mint(db, acc.Mint)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "tokens:   %s (mint %s)\n", coin.FormatHuman(acc.Amount, mint.Decimals), acc.Mint)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x/distribution"
	"github.com/iov-one/treasury/x/mint"
	"github.com/spf13/cobra"
)

// dispatchFlags describes the account list of a dispatch request.
type dispatchFlags struct {
	authority    string
	mint         string
	wallet       string
	destinations []string
	tokenProgram string
}

func (f *dispatchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.authority, "authority", "", "distribution authority, signs the request")
	cmd.Flags().StringVar(&f.mint, "mint", "", "mint address")
	cmd.Flags().StringVar(&f.wallet, "wallet", "", "treasury wallet, signs the request")
	cmd.Flags().StringSliceVar(&f.destinations, "dest", nil, "destination token account, in tier order, can be repeated")
	cmd.Flags().StringVar(&f.tokenProgram, "token-program", "", "token program address")
}

// accounts returns the request accounts in dispatch order: authority,
// mint, source, treasury wallet, destinations and the token program.
func (f *dispatchFlags) accounts(n *node) ([]treasury.Account, error) {
	raw := []string{f.authority, f.mint, f.wallet, f.wallet}
	raw = append(raw, f.destinations...)
	raw = append(raw, f.tokenProgram)
	addrs, err := parseAddresses(raw)
	if err != nil {
		return nil, err
	}
	return n.accounts([]treasury.Address{addrs[0], addrs[2]}, addrs...)
}

func newMintCommand(env *environment) *cobra.Command {
	var flags dispatchFlags
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Create the mint and issue the whole supply into the treasury wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()

			accounts, err := flags.accounts(n)
			if err != nil {
				return err
			}
			res, err := n.execute(&treasury.Request{
				Path:     distribution.PathDispatch,
				Accounts: accounts,
			})
			if err != nil {
				return err
			}
			supply, err := mint.TotalSupply(mint.Decimals)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, supply %s\n", res.Log, coin.FormatHuman(supply, mint.Decimals))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDistributeCommand(env *environment) *cobra.Command {
	var (
		flags dispatchFlags
		memo  string
	)
	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Distribute the treasury wallet across the destinations by tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()

			accounts, err := flags.accounts(n)
			if err != nil {
				return err
			}
			req, err := treasury.NewRequest(&distribution.DistributeMsg{Memo: memo}, accounts...)
			if err != nil {
				return err
			}
			res, err := n.execute(req)
			if err != nil {
				return err
			}
			amounts, err := distribution.DecodeAmounts(res.Data)
			if err != nil {
				return errors.Wrap(err, "result")
			}
			out := cmd.OutOrStdout()
			for i, a := range amounts {
				fmt.Fprintf(out, "%s\t%s\n", flags.destinations[i], coin.FormatHuman(a, mint.Decimals))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&memo, "memo", "monthly distribution", "memo stored with the request")
	return cmd
}

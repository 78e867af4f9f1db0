package main

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/gov"
	"github.com/iov-one/treasury/x/multisig"
	"github.com/spf13/cobra"
)

func newVoteCommand(env *environment) *cobra.Command {
	var voterAddr string
	cmd := &cobra.Command{
		Use:   "vote <proposal>",
		Short: "Vote for a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProposalID(args[0])
			if err != nil {
				return err
			}
			voter, err := parseAddress(voterAddr)
			if err != nil {
				return errors.Wrap(err, "voter")
			}
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()

			accounts, err := n.accounts([]treasury.Address{voter}, voter)
			if err != nil {
				return err
			}
			req, err := treasury.NewRequest(&gov.VoteMsg{ProposalID: id}, accounts...)
			if err != nil {
				return err
			}
			res, err := n.execute(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "proposal %d: %d votes\n", id, binary.BigEndian.Uint64(res.Data))
			return nil
		},
	}
	cmd.Flags().StringVar(&voterAddr, "voter", "", "voter address, signs the request")
	return cmd
}

func newTallyCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "tally [proposal]",
		Short: "Print the vote count of one or all proposals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()

			tally := gov.NewVoteTally(x.AccountAuth{}, gov.Configuration{})
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := parseProposalID(args[0])
				if err != nil {
					return err
				}
				count, err := tally.Tally(n.app.Query(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%d\n", id, count)
				return nil
			}
			proposals, err := tally.Proposals(n.app.Query())
			if err != nil {
				return err
			}
			for _, p := range proposals {
				fmt.Fprintf(out, "%d\t%d\n", p.ID, p.VoteCount)
			}
			return nil
		},
	}
}

func newApproveCommand(env *environment) *cobra.Command {
	var (
		signers   []string
		threshold uint32
	)
	cmd := &cobra.Command{
		Use:   "approve <candidate>...",
		Short: "Check that enough candidates signed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := parseAddresses(args)
			if err != nil {
				return err
			}
			signed, err := parseAddresses(signers)
			if err != nil {
				return err
			}
			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()

			accounts, err := n.accounts(signed, candidates...)
			if err != nil {
				return err
			}
			req, err := treasury.NewRequest(&multisig.ApproveMsg{Threshold: threshold}, accounts...)
			if err != nil {
				return err
			}
			res, err := n.execute(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "approved by %d of %d\n", binary.BigEndian.Uint32(res.Data), len(candidates))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&signers, "signer", nil, "candidate that signs the request, can be repeated")
	cmd.Flags().Uint32Var(&threshold, "threshold", 1, "required number of signatures")
	return cmd
}

func parseProposalID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "proposal id: %s", err)
	}
	return id, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), treasury.Version())
			return nil
		},
	}
}

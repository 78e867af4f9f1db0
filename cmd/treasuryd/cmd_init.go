package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/app"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x/authority"
	"github.com/iov-one/treasury/x/distribution"
	"github.com/iov-one/treasury/x/gov"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInitCommand(env *environment) *cobra.Command {
	var (
		genesisFile   string
		chainID       string
		authorityAddr string
		funds         []string
		tiers         []uint
		policy        string
		oncePerPeriod bool
		rejectDupVote bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the genesis file and initialize the chain state",
		Long: `Initialize the chain state. When --genesis is given, that file is
loaded. Otherwise a genesis file is generated from the flags and written
to the home directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var gen *app.Genesis
			if genesisFile != "" {
				g, err := app.LoadGenesis(genesisFile)
				if err != nil {
					return err
				}
				gen = g
			} else {
				auth, err := parseAddress(authorityAddr)
				if err != nil {
					return errors.Wrap(err, "authority")
				}
				conf := distribution.DefaultConfiguration()
				if len(tiers) != 0 {
					conf.TierTable = conf.TierTable[:0]
					for _, t := range tiers {
						conf.TierTable = append(conf.TierTable, uint32(t))
					}
				}
				if err := conf.Policy.UnmarshalJSON([]byte(strconv.Quote(policy))); err != nil {
					return err
				}
				conf.OncePerPeriod = oncePerPeriod

				funded, err := parseFunds(funds)
				if err != nil {
					return err
				}
				g, err := buildGenesis(chainID, &authority.Configuration{Authority: auth}, &conf, &gov.Configuration{RejectDuplicateVotes: rejectDupVote}, funded)
				if err != nil {
					return err
				}
				gen = g
				if err := writeGenesis(filepath.Join(viper.GetString(flagHome), "genesis.json"), gen); err != nil {
					return err
				}
			}

			n, err := env.open()
			if err != nil {
				return err
			}
			defer n.close()
			if err := n.app.InitChain(gen); err != nil {
				return err
			}
			id, err := n.app.Commit()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chain %s initialized at version %d\n", gen.ChainID, id.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&genesisFile, "genesis", "", "load this genesis file instead of generating one")
	cmd.Flags().StringVar(&chainID, "chain-id", "treasury-local", "chain id")
	cmd.Flags().StringVar(&authorityAddr, "authority", "", "address of the distribution authority")
	cmd.Flags().StringSliceVar(&funds, "fund", nil, "native balance as address=lamports, can be repeated")
	cmd.Flags().UintSliceVar(&tiers, "tier", nil, "tier share in basis points, can be repeated")
	cmd.Flags().StringVar(&policy, "policy", distribution.PolicyCap.String(), "handling of destinations beyond the tier table (cap|reject)")
	cmd.Flags().BoolVar(&oncePerPeriod, "once-per-period", false, "allow a single distribution per calendar month")
	cmd.Flags().BoolVar(&rejectDupVote, "reject-duplicate-votes", false, "reject a second vote from the same voter")
	return cmd
}

type fundedAccount struct {
	Address treasury.Address `json:"address"`
	Balance uint64           `json:"balance"`
}

func parseFunds(raw []string) ([]fundedAccount, error) {
	var res []fundedAccount
	for _, r := range raw {
		chunks := strings.SplitN(r, "=", 2)
		if len(chunks) != 2 {
			return nil, errors.Wrapf(errors.ErrInput, "fund %q: expected address=lamports", r)
		}
		addr, err := parseAddress(chunks[0])
		if err != nil {
			return nil, err
		}
		bal, err := strconv.ParseUint(chunks[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "fund %q: %s", r, err)
		}
		res = append(res, fundedAccount{Address: addr, Balance: bal})
	}
	return res, nil
}

func buildGenesis(chainID string, auth *authority.Configuration, dist *distribution.Configuration, govConf *gov.Configuration, funded []fundedAccount) (*app.Genesis, error) {
	if err := auth.Validate(); err != nil {
		return nil, err
	}
	if err := dist.Validate(); err != nil {
		return nil, err
	}
	conf, err := json.Marshal(map[string]interface{}{
		authority.PkgName:    auth,
		distribution.PkgName: dist,
		gov.PkgName:          govConf,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	ledgerState, err := json.Marshal(funded)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &app.Genesis{
		ChainID: chainID,
		AppState: treasury.Options{
			"conf":   conf,
			"ledger": ledgerState,
		},
	}, nil
}

func writeGenesis(path string, gen *app.Genesis) error {
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(errors.ErrInput, "home directory: %s", err)
	}
	if err := ioutil.WriteFile(path, raw, 0644); err != nil {
		return errors.Wrapf(errors.ErrInput, "write genesis: %s", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome    = "home"
	flagBackend = "backend"
	flagTime    = "time"
	flagDebug   = "debug"
)

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "treasury")

	if err := newRootCommand(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// newRootCommand returns the treasuryd command with all subcommands
// registered. Every flag can also be set through a TREASURY_ prefixed
// environment variable, for example TREASURY_HOME.
func newRootCommand(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "treasuryd",
		Short:         "Tiered treasury token distribution",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
	}

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".treasury")
	cmd.PersistentFlags().String(flagHome, defaultHome, "directory to store files under")
	cmd.PersistentFlags().String(flagBackend, backendIAVL, "state store backend (iavl|pebble)")
	cmd.PersistentFlags().String(flagTime, "", "block time in RFC3339, defaults to now")
	cmd.PersistentFlags().Bool(flagDebug, false, "return full error details")

	viper.SetEnvPrefix("TREASURY")
	viper.AutomaticEnv()

	env := &environment{logger: logger}
	cmd.AddCommand(
		newInitCommand(env),
		newFundCommand(env),
		newOpenCommand(env),
		newMintCommand(env),
		newDistributeCommand(env),
		newVoteCommand(env),
		newTallyCommand(env),
		newApproveCommand(env),
		newTransferCommand(env),
		newBalanceCommand(env),
		newVersionCommand(),
	)
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/cryptosphere-systems/bitcoinaddress"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func configureLogger(verbosity int) {
	switch {
	case verbosity <= 0:
		logrus.SetLevel(logrus.WarnLevel)
	case verbosity == 1:
		logrus.SetLevel(logrus.InfoLevel)
	case verbosity == 2:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}
}

func CmdBtcAddr() *cobra.Command {
	var network string
	cmd := &cobra.Command{
		Use:          "btcaddr <address> ...",
		Short:        "Check the formatting and checksums of bitcoin addresses",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			configureLogger(verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, arg := range args {
				err := bitcoinaddress.CheckAddress(bitcoinaddress.Address(arg), bitcoinaddress.Network(network))
				if err != nil {
					invalid++
					logrus.WithField("address", arg).Info(err)
					fmt.Printf("%s: invalid\n", arg)
				} else {
					fmt.Printf("%s: valid\n", arg)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d addresses are invalid", invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&network, "network", string(bitcoinaddress.Mainnet), "Network to validate against (mainnet or testnet)")
	cmd.Flags().CountP("verbose", "v", "Set verbosity (-v info, -vv debug, -vvv trace)")
	return cmd
}

func main() {
	rootCmd := CmdBtcAddr()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

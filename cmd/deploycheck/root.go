package deploycheck

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/deploycheck/sdk"
	"github.com/smartcontractkit/deploycheck/types"
)

// errNotClean is returned by check when the report holds violations or chain errors.
var errNotClean = errors.New("deployment check found violations or errors")

type rootOptions struct {
	configPath  string
	envFile     string
	chains      []string
	readTimeout time.Duration
	verbose     bool
}

func (o *rootOptions) chainNames() []types.ChainName {
	names := make([]types.ChainName, 0, len(o.chains))
	for _, chain := range o.chains {
		names = append(names, types.ChainName(chain))
	}

	return names
}

func BuildDeployCheckCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := cobra.Command{
		Use:           "deploycheck",
		Short:         "Check multi-chain deployments against their expected configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lggr, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(sdk.WithLogger(cmd.Context(), lggr.Sugar()))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the environment config (json, yaml or toml)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to the .env file holding RPC_URL_<CHAIN> entries")
	cmd.PersistentFlags().StringSliceVar(&opts.chains, "chains", nil, "Only check these chains")
	cmd.PersistentFlags().DurationVar(&opts.readTimeout, "read-timeout", 30*time.Second, "Timeout for reading a single contract")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(buildCheckCmd(opts))
	cmd.AddCommand(buildWatchCmd(opts))
	cmd.AddCommand(buildChainsCmd())

	return &cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

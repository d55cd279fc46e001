package deploycheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/deploycheck"
	"github.com/smartcontractkit/deploycheck/chainsmetadata"
	"github.com/smartcontractkit/deploycheck/inspectors"
	"github.com/smartcontractkit/deploycheck/pkg/config"
	"github.com/smartcontractkit/deploycheck/sdk"
	"github.com/smartcontractkit/deploycheck/types"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func buildCheckCmd(root *rootOptions) *cobra.Command {
	var (
		format         string
		bytecodePolicy string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the deployment once and print the violations",
		Long:  `Read the on-chain state of every expected contract, compare it to the environment config and print the violations. Exits non-zero when any violation or chain error is found.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatTable && format != formatJSON {
				return fmt.Errorf("unknown format: %q", format)
			}

			env, err := loadEnvironment(root, bytecodePolicy)
			if err != nil {
				return err
			}

			readers, connectErrs := env.connect(cmd.Context(), root.envFile)
			defer closeAll(readers)

			report, err := evaluate(cmd.Context(), env.assembly, asInspectors(readers), connectErrs, env.checker,
				inspectors.WithReadTimeout(root.readTimeout))
			if err != nil {
				return err
			}

			if err := writeReport(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			if !report.Clean() {
				return errNotClean
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	cmd.Flags().StringVar(&bytecodePolicy, "bytecode-policy", "", "Bytecode comparison: exact or ignore-metadata (defaults to the config)")

	return cmd
}

// environment is a loaded and assembled environment config ready to be checked.
type environment struct {
	registry *chainsmetadata.Registry
	assembly *config.Assembly
	checker  *deploycheck.Checker
}

func loadEnvironment(root *rootOptions, policyFlag string) (*environment, error) {
	if root.configPath == "" {
		return nil, errors.New("--config is required")
	}

	cfg, err := config.LoadFile(root.configPath)
	if err != nil {
		return nil, err
	}

	env, err := chainsmetadata.GetEnvironment(cfg.Environment)
	if err != nil {
		return nil, err
	}
	registry, err := env.Registry(chainsmetadata.Default())
	if err != nil {
		return nil, err
	}

	assembly, err := filterAssembly(cfg.Assemble(registry), root.chainNames())
	if err != nil {
		return nil, err
	}

	policy, err := resolvePolicy(policyFlag, cfg.BytecodePolicy)
	if err != nil {
		return nil, err
	}

	return &environment{
		registry: registry,
		assembly: assembly,
		checker:  deploycheck.NewChecker(deploycheck.WithBytecodePolicy(policy)),
	}, nil
}

// connect dials every chain with an assembled expected state.
func (e *environment) connect(
	ctx context.Context, envFile string,
) (map[types.ChainName]inspectors.ChainInspector, map[types.ChainName]error) {
	chains := types.SortedChainNames(e.assembly.Expected)

	urls, err := loadRPCURLs(envFile, chains)
	if err != nil {
		errs := make(map[types.ChainName]error, len(chains))
		for _, chain := range chains {
			errs[chain] = err
		}

		return nil, errs
	}

	return inspectors.FetchInspectors(ctx, e.registry, chains, urls)
}

// resolvePolicy picks the bytecode policy from the flag, then the config, then the default.
func resolvePolicy(flag, configured string) (deploycheck.BytecodePolicy, error) {
	switch {
	case flag != "":
		return deploycheck.ParseBytecodePolicy(flag)
	case configured != "":
		return deploycheck.ParseBytecodePolicy(configured)
	default:
		return deploycheck.BytecodeExact, nil
	}
}

// filterAssembly narrows the assembly to the given chains. An empty filter keeps every chain.
func filterAssembly(asm *config.Assembly, chains []types.ChainName) (*config.Assembly, error) {
	if len(chains) == 0 {
		return asm, nil
	}

	filtered := &config.Assembly{
		Environment: asm.Environment,
		Expected:    make(map[types.ChainName][]types.ExpectedState),
		Errors:      make(map[types.ChainName]error),
	}
	for _, chain := range chains {
		if !slices.Contains(asm.Chains, chain) {
			return nil, fmt.Errorf("chain %s is not part of environment %s", chain, asm.Environment)
		}
		if expected, ok := asm.Expected[chain]; ok {
			filtered.Expected[chain] = expected
		}
		if err, ok := asm.Errors[chain]; ok {
			filtered.Errors[chain] = err
		}
	}
	filtered.Chains = slices.Compact(slices.Sorted(slices.Values(chains)))

	return filtered, nil
}

// evaluate reads the observed state through readers and checks it against the assembly. Chains
// that failed to assemble, connect or read are flagged in the report.
func evaluate(
	ctx context.Context,
	asm *config.Assembly,
	readers map[types.ChainName]sdk.Inspector,
	connectErrs map[types.ChainName]error,
	checker *deploycheck.Checker,
	opts ...inspectors.FetcherOption,
) (*deploycheck.Report, error) {
	lggr := sdk.LoggerFrom(ctx)

	failed := maps.Clone(asm.Errors)
	if failed == nil {
		failed = make(map[types.ChainName]error)
	}
	maps.Copy(failed, connectErrs)

	expected := make(map[types.ChainName][]types.ExpectedState, len(asm.Expected))
	for chain, states := range asm.Expected {
		if _, ok := failed[chain]; !ok {
			expected[chain] = states
		}
	}

	observed, readErrs := inspectors.NewFetcher(readers, opts...).Fetch(ctx, expected)
	maps.Copy(failed, readErrs)

	chains := make([]types.ChainName, 0, len(asm.Chains))
	for _, chain := range asm.Chains {
		if _, ok := failed[chain]; !ok {
			chains = append(chains, chain)
		}
	}

	lggr.Infof("checking %d chains of %s, %d could not be read", len(chains), asm.Environment, len(failed))

	report, err := checker.CheckAll(ctx, chains, asm.Expected, observed)
	for _, chain := range types.SortedChainNames(failed) {
		lggr.Warnf("chain %s not checked: %v", chain, failed[chain])
		report.Flag(chain, failed[chain])
	}

	return report, err
}

func asInspectors(readers map[types.ChainName]inspectors.ChainInspector) map[types.ChainName]sdk.Inspector {
	out := make(map[types.ChainName]sdk.Inspector, len(readers))
	for chain, reader := range readers {
		out[chain] = reader
	}

	return out
}

func closeAll(readers map[types.ChainName]inspectors.ChainInspector) {
	for _, reader := range readers {
		reader.Close()
	}
}

func writeReport(w io.Writer, report *deploycheck.Report, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	}

	digest, err := report.Digest()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n%d violations, %d chain errors (digest %s)\n",
		report.AsTable(), report.Count(), len(report.Errors), digest)

	return err
}

package deploycheck

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/deploycheck/chainsmetadata"
)

func buildChainsCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "Print the chain metadata of an environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := chainsmetadata.GetEnvironment(envName)
			if err != nil {
				return err
			}
			registry, err := env.Registry(chainsmetadata.Default())
			if err != nil {
				return err
			}

			return writeChains(cmd.OutOrStdout(), registry)
		},
	}

	cmd.Flags().StringVar(&envName, "environment", "testnet3", "Environment to print")

	return cmd
}

func writeChains(w io.Writer, registry *chainsmetadata.Registry) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Chain", "Domain", "Family", "Finality", "Decimals", "Selector"})
	table.SetAutoWrapText(false)

	for _, name := range registry.Names() {
		m := registry.MustGet(name)

		selector := "-"
		if s, err := m.Selector(); err == nil {
			selector = strconv.FormatUint(s, 10)
		}

		table.Append([]string{
			name.String(),
			strconv.FormatUint(uint64(m.ID), 10),
			m.Family,
			strconv.FormatUint(uint64(m.FinalityBlocks), 10),
			strconv.FormatUint(uint64(m.NativeTokenDecimals), 10),
			selector,
		})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "%d chains\n", registry.Len())

	return err
}

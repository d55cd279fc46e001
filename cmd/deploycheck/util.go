package deploycheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/smartcontractkit/deploycheck/types"
)

// rpcKey returns the environment variable holding the RPC URL of a chain.
func rpcKey(chain types.ChainName) string {
	return "RPC_URL_" + strings.ToUpper(chain.String())
}

// loadRPCURLs loads the .env file, if present, and returns the RPC URL set for each chain.
// Chains without a URL are left out.
func loadRPCURLs(envFile string, chains []types.ChainName) (map[types.ChainName]string, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	urls := make(map[types.ChainName]string, len(chains))
	for _, chain := range chains {
		if url := os.Getenv(rpcKey(chain)); url != "" {
			urls[chain] = url
		}
	}

	return urls, nil
}

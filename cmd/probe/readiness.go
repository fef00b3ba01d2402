package probe

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-receive/internal/config"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `This command runs the readiness probe against the local server.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return err
			}

			return runReadiness(cmd, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(cmd *cobra.Command, verbose bool) error {
	cfg := config.DefaultServiceConfigFromEnv()

	code, body, err := probe(cmd.Context(), cfg, "/-/ready", cfg.Management.ReadinessTimeout)
	if err != nil {
		return err
	}

	printVerbose(verbose, "%s\n", body)

	if code != http.StatusOK {
		return errors.Errorf("readiness probe failed with status %d", code)
	}

	return nil
}

package probe

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-receive/internal/api/handlers/common"
	"github/chapool/go-receive/internal/config"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `This command runs liveness probes against the local server.
The server is alive if it answers its health check, ready or not.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return err
			}

			return runLiveness(cmd, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runLiveness(cmd *cobra.Command, verbose bool) error {
	cfg := config.DefaultServiceConfigFromEnv()

	code, body, err := probe(cmd.Context(), cfg, "/-/healthy", cfg.Management.LivenessTimeout)
	if err != nil {
		return err
	}

	printVerbose(verbose, "%s", body)

	if code != http.StatusOK && code != common.StatusNotReady {
		return errors.Errorf("liveness probe failed with status %d", code)
	}

	return nil
}

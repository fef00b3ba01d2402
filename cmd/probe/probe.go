package probe

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/util/command"
)

const (
	verboseFlag string = "verbose"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

// probeURL returns the URL of path on the locally listening server.
func probeURL(cfg config.Server, path string) (string, error) {
	host, port, err := net.SplitHostPort(cfg.Echo.ListenAddress)
	if err != nil {
		return "", errors.Wrapf(err, "invalid listen address %q", cfg.Echo.ListenAddress)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}

	return "http://" + net.JoinHostPort(host, port) + path, nil
}

// probe performs GET path and reports the status code and body.
func probe(ctx context.Context, cfg config.Server, path string, timeout time.Duration) (int, string, error) {
	url, err := probeURL(cfg, path)
	if err != nil {
		return 0, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to create probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, "", errors.Wrapf(err, "failed to probe %s", url)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, "", errors.Wrap(err, "failed to read probe response")
	}

	return res.StatusCode, string(body), nil
}

func printVerbose(verbose bool, format string, args ...interface{}) {
	if verbose {
		//nolint:forbidigo // probes report on stdout
		fmt.Printf(format, args...)
	}
}

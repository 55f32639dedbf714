// Command xuav queries the X-UAV backend from the terminal and runs the
// development proxy.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CannonJunior/x-uav/client"
	"github.com/CannonJunior/x-uav/internal/config"
	"github.com/CannonJunior/x-uav/internal/logger"
	"github.com/CannonJunior/x-uav/internal/render"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the resolved settings shared by every sub-command.
type app struct {
	baseURL  string
	contract string
	timeout  time.Duration
	output   string
	debug    bool

	cfg    *config.Config
	apiCfg client.Config
	format render.Format
	log    zerolog.Logger
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "xuav",
		Short:         "Query the X-UAV platform catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.baseURL, "base-url", "", "Backend base URL (default from XUAV_API_BASE_URL or the contract)")
	pf.StringVar(&a.contract, "contract", "", "Backend contract: legacy or v1 (default from XUAV_API_CONTRACT)")
	pf.DurationVar(&a.timeout, "timeout", 0, "Per-request timeout (default from XUAV_API_TIMEOUT)")
	pf.StringVarP(&a.output, "output", "o", "table", "Output format: table or json")
	pf.BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging and HTTP dumps")

	rootCmd.AddCommand(newHealthCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newCompareCmd(a))
	rootCmd.AddCommand(newSearchCmd(a))
	rootCmd.AddCommand(newFiltersCmd(a))
	rootCmd.AddCommand(newArmamentsCmd(a))
	rootCmd.AddCommand(newV1Cmd(a))
	rootCmd.AddCommand(newProxyCmd(a))

	return rootCmd
}

// setup merges environment configuration with the persistent flags and
// installs the logger. Flags win over the environment.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if a.debug {
		level = "debug"
	}
	a.cfg = cfg
	a.log = logger.Setup("xuav", level, logger.FormatConsole, cmd.ErrOrStderr())

	apiCfg, err := client.LoadConfig()
	if err != nil {
		return err
	}
	if a.contract != "" {
		c, err := client.ParseContract(a.contract)
		if err != nil {
			return err
		}
		if c != apiCfg.Contract && os.Getenv("XUAV_API_BASE_URL") == "" {
			apiCfg.BaseURL = c.DefaultBaseURL()
		}
		apiCfg.Contract = c
	}
	if a.baseURL != "" {
		apiCfg.BaseURL = a.baseURL
	}
	if a.timeout < 0 {
		return fmt.Errorf("--timeout must be >= 0")
	}
	if a.timeout > 0 {
		apiCfg.Timeout = a.timeout
	}
	apiCfg.Debug = apiCfg.Debug || a.debug
	a.apiCfg = apiCfg

	if a.format, err = render.ParseFormat(a.output); err != nil {
		return err
	}

	a.log.Debug().
		Str("base_url", apiCfg.BaseURL).
		Str("contract", string(apiCfg.Contract)).
		Dur("timeout", apiCfg.Timeout).
		Int("retry_attempts", apiCfg.RetryAttempts).
		Msg("resolved backend configuration")
	return nil
}

func (a *app) printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), a.format)
}

// legacy builds a Client. Commands that only exist on the legacy contract
// refuse to run against v1.
func (a *app) legacy() (*client.Client, error) {
	if a.apiCfg.Contract != client.ContractLegacy {
		return nil, fmt.Errorf("this command requires the legacy contract (got %s)", a.apiCfg.Contract)
	}
	return client.NewFromConfig(a.apiCfg, client.WithLogger(a.log))
}

// v1 builds a V1Client. A base URL ending in /api is accepted and trimmed to
// the service root.
func (a *app) v1() (*client.V1Client, error) {
	cfg := a.apiCfg
	cfg.BaseURL = strings.TrimSuffix(strings.TrimRight(cfg.BaseURL, "/"), "/api")
	cfg.Contract = client.ContractV1
	return client.NewV1FromConfig(cfg, client.WithLogger(a.log))
}

// describeError turns a client error into a one-line message for humans.
func describeError(err error) string {
	var nf *client.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("No %s found with identifier %q.", nf.Resource, nf.Key)
	}
	var ve *client.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("Invalid input: %v", ve)
	}
	if code, ok := client.StatusCode(err); ok {
		return fmt.Sprintf("Backend returned HTTP %d.", code)
	}
	if client.IsRecoverable(err) {
		return fmt.Sprintf("Backend unreachable: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/opencontrail/vrouter-ctl/pkg/config"
	"github.com/opencontrail/vrouter-ctl/pkg/logging"
	"github.com/opencontrail/vrouter-ctl/pkg/types"
	"github.com/opencontrail/vrouter-ctl/pkg/vrouter"
)

const (
	programName = "vrouter-ctl"

	// ExitOK is returned when the command completed
	ExitOK = 0
	// ExitFailure is returned when the vrouter agent call failed
	ExitFailure = 1
	// ExitUsage is returned when the command line could not be parsed
	ExitUsage = 2

	noCommandMessage = "No command specified"
)

// ClientFactory builds the vrouter client used by the add command
type ClientFactory func(cfg *config.Config) (vrouter.PortAdder, error)

// NewVRouterClient returns a REST client for the agent configured in cfg.
func NewVRouterClient(cfg *config.Config) (vrouter.PortAdder, error) {
	if cfg.VRouterURL == "" {
		return nil, errors.New("vrouter agent URL is empty")
	}
	return vrouter.NewClient(cfg.VRouterURL, cfg.Timeout), nil
}

// UsageError is returned when the command line is malformed. No vrouter call is made.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string { return e.err.Error() }

func (e *UsageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{err: errors.Errorf(format, args...)}
}

// validateArgs checks the positionals: {add} dockerId
func validateArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageErrorf("the following arguments are required: command, dockerId")
	case len(args) == 1:
		return usageErrorf("the following arguments are required: dockerId")
	case len(args) > 2:
		return usageErrorf("unrecognized arguments: %s", strings.Join(args[2:], " "))
	}

	for _, valid := range cmd.ValidArgs {
		if args[0] == valid {
			return nil
		}
	}
	return usageErrorf("argument command: invalid choice: %q (choose from %s)", args[0], strings.Join(cmd.ValidArgs, ", "))
}

// NewRootCommand returns the vrouter-ctl command. newClient is only called once a supported command was parsed.
func NewRootCommand(newClient ClientFactory) *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("%s [flags] {%s} dockerId", programName, strings.Join(types.SupportedCommands(), ",")),
		Short:         "Register container ports with the vrouter agent",
		ValidArgs:     types.SupportedCommands(),
		Args:          validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cfg, newClient, types.ParseCommand(args[0]), args[1])
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err: err}
	})
	config.AddFlags(cfg, cmd.Flags())

	return cmd
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, newClient ClientFactory, command types.Command, dockerID string) error {
	logging.Init(cfg.LogLevel, cfg.LogFile, dockerID, cfg.VM, cfg.VMI, cfg.Interface)

	switch command {
	case types.CommandAdd:
		return addPort(ctx, cfg, newClient, dockerID)
	default:
		fmt.Fprintln(out, noCommandMessage)
		return nil
	}
}

func addPort(ctx context.Context, cfg *config.Config, newClient ClientFactory, dockerID string) error {
	client, err := newClient(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create vrouter client")
	}

	port := cfg.Port(dockerID)
	logging.Debug("Adding port",
		"func", "addPort",
		"mac", port.MacAddress,
		"portType", port.Type)

	if err := client.AddPort(ctx, port); err != nil {
		logging.Debug("Failed to add port",
			"func", "addPort",
			"err", err)
		return errors.Wrapf(err, "failed to add port %s", dockerID)
	}

	logging.Debug("Port added", "func", "addPort")
	return nil
}

// Execute runs vrouter-ctl with args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, newClient ClientFactory) int {
	cmd := NewRootCommand(newClient)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, cmd.UsageString())
		fmt.Fprintf(stderr, "%s: error: %v\n", programName, err)
		return ExitUsage
	}

	fmt.Fprintf(stderr, "%s: %v\n", programName, err)
	return ExitFailure
}

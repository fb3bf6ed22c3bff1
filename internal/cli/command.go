// Package cli implements the smbscan command.
package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/smbscan/internal/config"
	"github.com/idelchi/smbscan/internal/report"
	"github.com/idelchi/smbscan/internal/scan"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	dial    dialFunc
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, dial: dialSMB}
}

// Execute runs the CLI with the process arguments until ctx is done.
func (c CLI) Execute(ctx context.Context) error {
	return c.Command().ExecuteContext(ctx)
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "smbscan",
		Short: "Report empty directories and oversized files on an SMB share",
		Long: heredoc.Doc(`
			smbscan walks an SMB share and writes a CSV report of empty directories
			and files larger than the size threshold.

			Connection settings are read from the environment, or from a .env file
			in the working directory:

			  SMB_SERVER         server hostname (required)
			  SMB_USERNAME       user name (required)
			  SMB_PASSWORD       password
			  SMB_DOMAIN         NTLM domain
			  SMB_SHARE          share name (default pkv_share)
			  SMB_PORT           TCP port (default 445)
			  SMB_DIAL_TIMEOUT   connect timeout (default 10s)

			The flags below can also be set with SMBSCAN_OUTPUT, SMBSCAN_THRESHOLD,
			SMBSCAN_UNKNOWN and SMBSCAN_DEBUG.
		`),
		Args:          cobra.NoArgs,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}

			v := config.New()
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return logic(cmd.Context(), cfg, c.dial, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringP(config.KeyOutput, "o", report.DefaultPath, "Path of the CSV report")
	flags.String(config.KeyThreshold, "500MiB", "Report files strictly larger than this size (e.g., 1GiB)")
	flags.String(config.KeyUnknown, scan.UnknownAsFile.String(),
		"Handling of entries whose type cannot be determined: file or skip")
	flags.Bool(config.KeyDebug, false, "Enable debug output")
	flags.StringVar(&envFile, "env-file", config.DefaultEnvFile, "Environment file to load")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	return cmd
}

// bindFlags registers flags in v so that changed flags take precedence over the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{config.KeyOutput, config.KeyThreshold, config.KeyUnknown, config.KeyDebug} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %q: %w", key, err)
		}
	}

	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manudejuan/home-finance/internal/buildinfo"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envPath    string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "finance",
		Short:   "Personal budget calculator",
		Long:    "Track income, expenses and fixed budgets, and project a savings goal.",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "budget.yaml", "budget config file")
	rootCmd.PersistentFlags().StringVar(&flags.envPath, "env", ".env", "dotenv file with FINANCE_* overrides")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(&flags))
	rootCmd.AddCommand(newShellCommand(&flags))

	return rootCmd
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
}

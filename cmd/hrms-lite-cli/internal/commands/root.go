package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the CLI with every command group registered on session.
func NewRootCommand(session *Session) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "hrms-lite-cli",
		Short: "Administrative CLI for the HRMS Lite backend",
		Long: `hrms-lite-cli manages the HRMS Lite database directly.
It initializes the schema and lists, adds or removes employees and attendance marks.
Results are printed as JSON on stdout; logs go to stderr.

The database is configured like the server, through DATABASE_TYPE, DATABASE_URL,
DATABASE_NAME and TIMEZONE or the YAML file given with --config (or CONFIG_PATH).`,
		SilenceUsage: true,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return session.Close()
		},
	}

	initializers := []struct {
		name string
		init func(*cobra.Command, *Session) error
	}{
		{"migrate", InitMigrateCommands},
		{"employee", InitEmployeeCommands},
		{"attendance", InitAttendanceCommands},
		{"dashboard", InitDashboardCommands},
	}

	for _, initializer := range initializers {
		if err := initializer.init(rootCmd, session); err != nil {
			return nil, fmt.Errorf("failed to initialize %s commands: %w", initializer.name, err)
		}
	}

	return rootCmd, nil
}

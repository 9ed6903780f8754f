package commands

import (
	"github.com/spf13/cobra"
)

// MigrateCommandHandler runs schema initialization.
type MigrateCommandHandler struct {
	session *Session
}

// MigrateCmd creates missing tables and indexes. Opening the session migrates.
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	if _, err := commandHandler.session.Services(); err != nil {
		return err
	}
	return writeJSON(cmd, map[string]string{"status": "schema up to date"})
}

// InitMigrateCommands registers the migrate command.
func InitMigrateCommands(rootCmd *cobra.Command, session *Session) error {
	handler := &MigrateCommandHandler{session: session}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing table or index",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}

package commands

import (
	"github.com/spf13/cobra"
)

// DashboardCommandHandler encapsulates the dashboard commands.
type DashboardCommandHandler struct {
	session *Session
}

// SummaryCmd prints today's attendance figures
func (commandHandler *DashboardCommandHandler) SummaryCmd(cmd *cobra.Command, _ []string) error {
	services, err := commandHandler.session.Services()
	if err != nil {
		return err
	}

	summary, err := services.Dashboard.Summary(cmd.Context())
	if err != nil {
		return err
	}
	return writeJSON(cmd, summary)
}

// InitDashboardCommands registers the dashboard command group.
func InitDashboardCommands(rootCmd *cobra.Command, session *Session) error {
	handler := &DashboardCommandHandler{session: session}

	var dashboardCmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Organisation-wide figures",
	}

	var summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Show today's attendance summary",
		Args:  cobra.NoArgs,
		RunE:  handler.SummaryCmd,
	}
	dashboardCmd.AddCommand(summaryCmd)

	rootCmd.AddCommand(dashboardCmd)
	return nil
}

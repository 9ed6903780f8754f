package commands

import (
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"

	"github.com/spf13/cobra"
)

// AttendanceCommandHandler encapsulates the attendance commands.
type AttendanceCommandHandler struct {
	session *Session
}

// MarkAttendanceCmd records today's status for an employee
func (commandHandler *AttendanceCommandHandler) MarkAttendanceCmd(cmd *cobra.Command, _ []string) error {
	employeeID, err := cmd.Flags().GetUint("employee")
	if err != nil {
		return fmt.Errorf("invalid employee flag: %w", err)
	}
	status, err := cmd.Flags().GetString("status")
	if err != nil {
		return fmt.Errorf("invalid status flag: %w", err)
	}

	services, err := commandHandler.session.Services()
	if err != nil {
		return err
	}

	record, err := services.Attendance.Mark(cmd.Context(), employeeID, attendance.Status(status))
	if err != nil {
		return err
	}
	return writeJSON(cmd, record)
}

// ListAttendanceCmd prints an employee's records, newest first
func (commandHandler *AttendanceCommandHandler) ListAttendanceCmd(cmd *cobra.Command, _ []string) error {
	employeeID, err := cmd.Flags().GetUint("employee")
	if err != nil {
		return fmt.Errorf("invalid employee flag: %w", err)
	}

	query := attendance.NewAttendanceQuery(employeeID)
	for flag, target := range map[string]*string{
		"date":      &query.Date,
		"from-date": &query.FromDate,
		"to-date":   &query.ToDate,
	} {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", flag, err)
		}
		*target = value
	}

	services, err := commandHandler.session.Services()
	if err != nil {
		return err
	}

	records, err := services.Attendance.List(cmd.Context(), query)
	if err != nil {
		return err
	}
	return writeJSON(cmd, records)
}

// InitAttendanceCommands registers the attendance command group.
func InitAttendanceCommands(rootCmd *cobra.Command, session *Session) error {
	handler := &AttendanceCommandHandler{session: session}

	var attendanceCmd = &cobra.Command{
		Use:   "attendance",
		Short: "Mark and inspect attendance",
	}

	var markCmd = &cobra.Command{
		Use:   "mark",
		Short: "Mark today's attendance of an employee",
		Args:  cobra.NoArgs,
		RunE:  handler.MarkAttendanceCmd,
	}
	markCmd.Flags().UintP("employee", "", 0, "Employee id")
	markCmd.Flags().StringP("status", "", string(attendance.StatusPresent), "Present or Absent")
	if err := markCmd.MarkFlagRequired("employee"); err != nil {
		return fmt.Errorf("failed to mark employee as required: %w", err)
	}
	attendanceCmd.AddCommand(markCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List attendance records of an employee",
		Args:  cobra.NoArgs,
		RunE:  handler.ListAttendanceCmd,
	}
	listCmd.Flags().UintP("employee", "", 0, "Employee id")
	listCmd.Flags().StringP("date", "", "", "Single day (YYYY-MM-DD)")
	listCmd.Flags().StringP("from-date", "", "", "Inclusive lower bound (YYYY-MM-DD)")
	listCmd.Flags().StringP("to-date", "", "", "Inclusive upper bound (YYYY-MM-DD)")
	if err := listCmd.MarkFlagRequired("employee"); err != nil {
		return fmt.Errorf("failed to mark employee as required: %w", err)
	}
	attendanceCmd.AddCommand(listCmd)

	rootCmd.AddCommand(attendanceCmd)
	return nil
}

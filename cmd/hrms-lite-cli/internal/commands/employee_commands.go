package commands

import (
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/employees"

	"github.com/spf13/cobra"
)

// EmployeeCommandHandler encapsulates the employee administration commands.
type EmployeeCommandHandler struct {
	session *Session
}

// ListEmployeesCmd prints every employee, optionally filtered by department
func (commandHandler *EmployeeCommandHandler) ListEmployeesCmd(cmd *cobra.Command, _ []string) error {
	department, err := cmd.Flags().GetString("department")
	if err != nil {
		return fmt.Errorf("invalid department flag: %w", err)
	}

	services, err := commandHandler.session.Services()
	if err != nil {
		return err
	}

	query := employees.NewEmployeeQuery()
	query.Department = department

	list, err := services.Employees.List(cmd.Context(), query)
	if err != nil {
		return err
	}
	return writeJSON(cmd, list)
}

// AddEmployeeCmd registers an employee
func (commandHandler *EmployeeCommandHandler) AddEmployeeCmd(cmd *cobra.Command, _ []string) error {
	employee := &employees.Employee{}
	for flag, target := range map[string]*string{
		"employee-id": &employee.EmployeeID,
		"full-name":   &employee.FullName,
		"email":       &employee.Email,
		"department":  &employee.Department,
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

	created, err := services.Employees.Create(cmd.Context(), employee)
	if err != nil {
		return err
	}
	return writeJSON(cmd, created)
}

// DeleteEmployeeCmd removes an employee and their attendance records
func (commandHandler *EmployeeCommandHandler) DeleteEmployeeCmd(cmd *cobra.Command, _ []string) error {
	id, err := cmd.Flags().GetUint("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}

	services, err := commandHandler.session.Services()
	if err != nil {
		return err
	}

	if err := services.Employees.DeleteByID(cmd.Context(), id); err != nil {
		return err
	}
	return writeJSON(cmd, map[string]uint{"deleted": id})
}

// InitEmployeeCommands registers the employees command group.
func InitEmployeeCommands(rootCmd *cobra.Command, session *Session) error {
	handler := &EmployeeCommandHandler{session: session}

	var employeesCmd = &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE:  handler.ListEmployeesCmd,
	}
	listCmd.Flags().StringP("department", "", "", "Only list employees of this department")
	employeesCmd.AddCommand(listCmd)

	var addCmd = &cobra.Command{
		Use:   "add",
		Short: "Register an employee",
		Args:  cobra.NoArgs,
		RunE:  handler.AddEmployeeCmd,
	}
	addCmd.Flags().StringP("employee-id", "", "", "Unique employee code")
	addCmd.Flags().StringP("full-name", "", "", "Full name")
	addCmd.Flags().StringP("email", "", "", "Unique email address")
	addCmd.Flags().StringP("department", "", "", "Department")
	for _, flag := range []string{"employee-id", "full-name", "email", "department"} {
		if err := addCmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark %s as required: %w", flag, err)
		}
	}
	employeesCmd.AddCommand(addCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete an employee and their attendance records",
		Args:  cobra.NoArgs,
		RunE:  handler.DeleteEmployeeCmd,
	}
	deleteCmd.Flags().UintP("id", "", 0, "Employee id")
	if err := deleteCmd.MarkFlagRequired("id"); err != nil {
		return fmt.Errorf("failed to mark id as required: %w", err)
	}
	employeesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(employeesCmd)
	return nil
}

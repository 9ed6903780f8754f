// Package employees defines the employee entity, its validation rules and
// the service and repository contracts used by the employee route module.
package employees

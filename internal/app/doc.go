// Package app implements the business rules of the employee, attendance and
// dashboard route modules on top of the repository contracts.
package app

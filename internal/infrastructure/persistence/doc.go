// Package persistence provides the GORM-backed storage of employees and
// attendance records on PostgreSQL or SQLite, together with connection
// setup and idempotent schema migration.
package persistence

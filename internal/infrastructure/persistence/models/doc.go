// Package models contains the GORM models of the HRMS schema.
// They are kept apart from the domain entities so that storage tags and
// relations never leak into the service and API layers.
package models

//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identifierHolder struct {
	Name string `validate:"sqlident"`
}

type blankHolder struct {
	Value string `validate:"notblank"`
}

type dateHolder struct {
	Date string `validate:"omitempty,isodate"`
}

func TestSQLIdentifierValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "hrms", true},
		{"underscore", "hrms_test_01", true},
		{"leading underscore", "_hrms", true},
		{"leading digit", "1hrms", false},
		{"hyphen", "hrms-db", false},
		{"injection", "hrms; DROP TABLE employees", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(identifierHolder{Name: tt.input})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNotBlankValidation(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(blankHolder{Value: "Engineering"}))
	assert.Error(t, v.Struct(blankHolder{Value: "   "}))
	assert.Error(t, v.Struct(blankHolder{Value: ""}))
}

func TestISODateValidation(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(dateHolder{Date: "2024-02-29"}))
	assert.NoError(t, v.Struct(dateHolder{}))
	assert.Error(t, v.Struct(dateHolder{Date: "2023-02-29"}))
	assert.Error(t, v.Struct(dateHolder{Date: "29/02/2024"}))
}

func TestParseAndFormatISODate(t *testing.T) {
	parsed, err := ParseISODate("2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", FormatISODate(parsed))

	loc := time.FixedZone("UTC+9", 9*60*60)
	instant := time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-01", FormatISODate(instant.In(loc)))
}

func TestDescribe(t *testing.T) {
	err := New().Struct(blankHolder{Value: " "})
	require.Error(t, err)
	assert.Equal(t, "Field: Value, Tag: notblank", Describe(err))

	assert.Equal(t, "plain", Describe(errors.New("plain")))
}

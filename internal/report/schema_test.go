package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReport() *Report {
	return &Report{
		App:  "typedemo",
		Lang: "en",
		Sections: []Section{
			{
				Key:   "booleans",
				Title: "Boolean Type",
				Entries: []Entry{
					{Label: "true value", Value: "true"},
					{Label: "false value", Value: "false", Note: "zero value"},
				},
			},
		},
	}
}

func TestValidator_AcceptsValidReport(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(validReport()))
}

func TestValidator_RejectsEmptySections(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	r := validReport()
	r.Sections = []Section{}

	err = v.Validate(r)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Problems)
}

func TestValidator_RejectsEmptyLabel(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	r := validReport()
	r.Sections[0].Entries[0].Label = ""

	var vErr *ValidationError
	require.ErrorAs(t, v.Validate(r), &vErr)
}

func TestValidator_RejectsBadKey(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	r := validReport()
	r.Sections[0].Key = "Bool Types"

	assert.Error(t, v.Validate(r))
}

func TestValidator_RejectsUnknownLang(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	r := validReport()
	r.Lang = "fr"

	assert.Error(t, v.Validate(r))
}

func TestValidator_RejectsNil(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.Error(t, v.Validate(nil))
}

package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/cuebox/stagehand/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("boom")
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestSourceError(t *testing.T) {
	t.Run("message includes path when present", func(t *testing.T) {
		err := &pkgerrors.SourceError{
			Source: "donations",
			Path:   "input/donation_history.csv",
			Err:    errors.New("no such file"),
		}
		assert.Equal(t, "source donations (input/donation_history.csv): no such file", err.Error())
	})

	t.Run("message without path", func(t *testing.T) {
		err := &pkgerrors.SourceError{Source: "emails", Err: errors.New("empty table")}
		assert.Equal(t, "source emails: empty table", err.Error())
	})

	t.Run("unwraps to the loader error", func(t *testing.T) {
		cause := errors.New("read failed")
		err := pkgerrors.WrapSource("constituents", "", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("WrapSource passes nil through", func(t *testing.T) {
		assert.Error(t, pkgerrors.WrapSource("donations", "input/donations.csv", errors.New("missing header")))
		assert.NoError(t, pkgerrors.WrapSource("emails", "input/emails.csv", nil))
	})
}

func TestColumnError(t *testing.T) {
	withTable := pkgerrors.NewColumnError("constituents", "Patron ID")
	assert.Equal(t, `table constituents is missing required column "Patron ID"`, withTable.Error())
	assert.ErrorIs(t, withTable, pkgerrors.ErrMissingColumn)

	bare := pkgerrors.NewColumnError("", "Email")
	assert.Equal(t, `missing required column "Email"`, bare.Error())
	assert.True(t, pkgerrors.IsMissingColumn(bare))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and position",
			err: &pkgerrors.ParseError{
				Format:  "json",
				File:    "cache/tag_mapping.json",
				Line:    10,
				Column:  5,
				Message: "unexpected character",
			},
			want: "cache/tag_mapping.json:10:5: json parse error: unexpected character",
		},
		{
			name: "file without position",
			err: &pkgerrors.ParseError{
				Format:  "csv",
				File:    "patrons.csv",
				Message: "bare quote in field",
			},
			want: "patrons.csv: csv parse error: bare quote in field",
		},
		{
			name: "format alone",
			err:  &pkgerrors.ParseError{Format: "yaml", Message: "bad indentation"},
			want: "yaml parse error: bad indentation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	t.Run("NewParseError records the cause", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := pkgerrors.NewParseError("json", "mapping.json", "truncated document", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("WrapParse", func(t *testing.T) {
		cause := errors.New("record on line 3: wrong number of fields")
		var parseErr *pkgerrors.ParseError
		require.ErrorAs(t, pkgerrors.WrapParse("csv", "data.csv", cause), &parseErr)
		assert.Equal(t, "csv", parseErr.Format)
		assert.Equal(t, "data.csv", parseErr.File)
		assert.Equal(t, cause.Error(), parseErr.Message)

		assert.NoError(t, pkgerrors.WrapParse("yaml", "file.yaml", nil))
	})
}

func TestIOError(t *testing.T) {
	t.Run("message shapes", func(t *testing.T) {
		withPath := pkgerrors.WrapIO("read", "/tmp/patrons.csv", errors.New("permission denied"))
		assert.Equal(t, "cannot read /tmp/patrons.csv: permission denied", withPath.Error())

		bare := &pkgerrors.IOError{Operation: "flush", Message: "short write"}
		assert.Equal(t, "cannot flush: short write", bare.Error())
	})

	t.Run("unwraps to the file error", func(t *testing.T) {
		cause := errors.New("no space left on device")
		err := pkgerrors.WrapIO("write", "/data/output.csv", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("WrapIO", func(t *testing.T) {
		cause := errors.New("connection reset")
		var ioErr *pkgerrors.IOError
		require.ErrorAs(t, pkgerrors.WrapIO("download", "https://example.com/mapping", cause), &ioErr)
		assert.Equal(t, "download", ioErr.Operation)
		assert.Equal(t, "https://example.com/mapping", ioErr.Path)

		assert.NoError(t, pkgerrors.WrapIO("read", "file", nil))
	})
}

func TestAPIError(t *testing.T) {
	t.Run("status code in message", func(t *testing.T) {
		err := pkgerrors.NewAPIError("https://api.example.com/tag-mapping", 503, "service unavailable")
		assert.Equal(t, "API error from https://api.example.com/tag-mapping (status 503): service unavailable", err.Error())
	})

	t.Run("no status code", func(t *testing.T) {
		cause := errors.New("dial timeout")
		err := &pkgerrors.APIError{
			Endpoint: "https://api.example.com/tag-mapping",
			Message:  "mapping fetch failed",
			Err:      cause,
		}
		assert.Equal(t, "API error from https://api.example.com/tag-mapping: mapping fetch failed", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestConfigError(t *testing.T) {
	withComponent := pkgerrors.NewConfigError("sources", "constituents file: path cannot be empty", nil)
	assert.Equal(t, "invalid sources configuration: constituents file: path cannot be empty", withComponent.Error())

	bare := &pkgerrors.ConfigError{Message: "no inputs configured"}
	assert.Equal(t, "invalid configuration: no inputs configured", bare.Error())
}

func TestValidationError(t *testing.T) {
	withField := &pkgerrors.ValidationError{Field: "CB Title", Message: "not an allowed value"}
	assert.Equal(t, "invalid value for field CB Title: not an allowed value", withField.Error())
	assert.ErrorIs(t, withField, pkgerrors.ErrInvalidInput)

	bare := &pkgerrors.ValidationError{Message: "no rows to validate"}
	assert.Equal(t, "invalid input: no rows to validate", bare.Error())
	assert.True(t, pkgerrors.IsValidationError(bare))
}

func TestErrorChaining(t *testing.T) {
	cause := errors.New("connect: connection refused")
	chain := pkgerrors.WrapSource("tag mapping", "", pkgerrors.WrapIO("connect", "api.example.com", cause))

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, chain, &ioErr)
	assert.Equal(t, "connect", ioErr.Operation)

	var srcErr *pkgerrors.SourceError
	require.ErrorAs(t, chain, &srcErr)
	assert.Equal(t, "tag mapping", srcErr.Source)

	assert.ErrorIs(t, chain, cause)
}

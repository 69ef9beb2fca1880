package apierr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/todor/internal/apierr"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "network without cause",
			err:  apierr.Network(nil),
			want: "network unavailable",
		},
		{
			name: "network with cause",
			err:  apierr.Network(io.ErrUnexpectedEOF),
			want: "network unavailable: unexpected EOF",
		},
		{
			name: "http carries status and reason",
			err:  apierr.HTTP(404, "Not Found"),
			want: "server responded 404 Not Found",
		},
		{
			name: "validation",
			err:  apierr.Validation("a user and a non-empty title are required"),
			want: "a user and a non-empty title are required",
		},
		{
			name: "invalid id carries range",
			err:  apierr.InvalidID(999, 200),
			want: "id 999 is outside the known range [1, 200]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestCategoryChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"network", apierr.Network(nil), apierr.IsNetwork},
		{"http", apierr.HTTP(500, "Internal Server Error"), apierr.IsHTTP},
		{"validation", apierr.Validation("missing title"), apierr.IsValidation},
		{"invalid id", apierr.InvalidID(0, 200), apierr.IsInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("unrelated")))
		})
	}
}

func TestNetworkUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := apierr.Network(cause)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPFields(t *testing.T) {
	var httpErr *apierr.HTTPError
	err := apierr.HTTP(503, "Service Unavailable")
	if assert.ErrorAs(t, err, &httpErr) {
		assert.Equal(t, 503, httpErr.Status)
		assert.Equal(t, "Service Unavailable", httpErr.Reason)
	}
}

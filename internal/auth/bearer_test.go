package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{name: "empty", header: ""},
		{name: "no token", header: "Bearer "},
		{name: "only spaces", header: "Bearer    "},
		{name: "lowercase scheme", header: "bearer abc"},
		{name: "basic", header: "Basic dXNlcjpwYXNz"},
		{name: "no space", header: "Bearerabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBearerToken(tt.header)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

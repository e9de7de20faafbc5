package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "a@acme.com", NormalizeEmail("  A@Acme.COM "))
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "bob@acme.com", want: true},
		{in: "bob.stone+hr@mail.acme.co", want: true},
		{in: "", want: false},
		{in: "bob", want: false},
		{in: "bob@", want: false},
		{in: "Bob <bob@acme.com>", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, IsEmail(tt.in))
		})
	}
}

func TestSatisfies(t *testing.T) {
	require.True(t, Satisfies("secret1", "min=6"))
	require.False(t, Satisfies("12345", "min=6"))
	require.False(t, Satisfies("", "required"))
}

func TestTrimPtr(t *testing.T) {
	s := "  Eng "
	require.Equal(t, "Eng", *TrimPtr(&s))
	require.Nil(t, TrimPtr(nil))
}

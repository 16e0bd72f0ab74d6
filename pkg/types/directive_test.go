package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicy_Directive(t *testing.T) {
	tests := []struct {
		name       string
		valueName  string
		want       Directive
		wantTarget string
	}{
		{"plain", "NoAutoUpdate\x00", DirectiveSet, "NoAutoUpdate"},
		{"delete value", "**del.NoAutoUpdate\x00", DirectiveDeleteValue, "NoAutoUpdate"},
		{"delete value mixed case", "**Del.Proxy", DirectiveDeleteValue, "Proxy"},
		{"delete all values", "**delvals.\x00", DirectiveDeleteAllValues, ""},
		{"delete listed values", "**DeleteValues", DirectiveDeleteValues, ""},
		{"delete keys", "**DeleteKeys", DirectiveDeleteKeys, ""},
		{"secure key", "**SecureKey", DirectiveSecureKey, ""},
		{"soft", "**soft.Wallpaper", DirectiveSoft, "Wallpaper"},
		{"unknown double star", "**other", DirectiveSet, "**other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, target := Policy{Name: tt.valueName}.Directive()
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestDirective_String(t *testing.T) {
	require.Equal(t, "delete-value", DirectiveDeleteValue.String())
	require.Equal(t, "unknown", Directive(42).String())
}

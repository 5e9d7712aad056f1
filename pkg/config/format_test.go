package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTemplate(t *testing.T) {
	for _, tc := range []struct {
		tmpl string
		args []string
		res  string
	}{
		{"logs/{0}", []string{"334F454E"}, "logs/334F454E"},
		{"no placeholders", []string{"x"}, "no placeholders"},
		{"v{1}/{0}.zip", []string{"RpcServer", "3.0.0"}, "v3.0.0/RpcServer.zip"},
		{"{0}-{0}", []string{"a"}, "a-a"},
		{"{{{0}}}", []string{"a"}, "{a}"},
		{"", nil, ""},
	} {
		t.Run(tc.tmpl, func(t *testing.T) {
			res, err := formatTemplate(tc.tmpl, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.res, res)
		})
	}
}

func TestFormatTemplateErrors(t *testing.T) {
	for _, tmpl := range []string{
		"{1}",
		"{0",
		"0}",
		"{x}",
		"{-1}",
	} {
		t.Run(tmpl, func(t *testing.T) {
			_, err := formatTemplate(tmpl, "a")
			require.Error(t, err)
		})
	}
}

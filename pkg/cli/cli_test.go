package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "password.exclude_similar", ConfigKey("password", "exclude-similar"))
	assert.Equal(t, "json", ConfigKey("", "json"))
}

func TestBindFlagsToViper(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{Use: "password"}
	AddIntFlag(cmd, "length", "l", 16, "length")
	AddBoolFlag(cmd, "exclude-similar", "", false, "exclude")
	AddBoolFlag(cmd, "copy", "", false, "copy")
	require.NoError(t, cmd.ParseFlags([]string{"--length", "24", "--exclude-similar"}))

	v := viper.New()
	v.SetDefault("password.length", 16)
	require.NoError(t, BindFlagsToViper(cmd, v, "password", "copy"))

	assert.Equal(t, 24, v.GetInt("password.length"))
	assert.True(t, v.GetBool("password.exclude_similar"))
	assert.False(t, v.IsSet("password.copy"))
}

func TestSetViperEnvPrefix(t *testing.T) {
	t.Setenv("CYBERKITTEST_PASSWORD_LENGTH", "40")
	v := viper.New()
	v.SetDefault("password.length", 16)
	SetViperEnvPrefix(v, "CYBERKITTEST")
	assert.Equal(t, 40, v.GetInt("password.length"))
}

// pkg/cli/cli.go

// Package cli holds flag helpers shared by the cyberkit command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddStringFlag adds a string flag and optionally marks it required.
func AddStringFlag(cmd *cobra.Command, name, shorthand, def, help string, required bool) {
	cmd.Flags().StringP(name, shorthand, def, help)
	if required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to mark flag %s as required: %v\n", name, err)
		}
	}
}

// AddBoolFlag adds a boolean flag.
func AddBoolFlag(cmd *cobra.Command, name, shorthand string, def bool, help string) {
	cmd.Flags().BoolP(name, shorthand, def, help)
}

// AddIntFlag adds an int flag.
func AddIntFlag(cmd *cobra.Command, name, shorthand string, def int, help string) {
	cmd.Flags().IntP(name, shorthand, def, help)
}

// AddStringSliceFlag adds a comma-separated string slice flag.
func AddStringSliceFlag(cmd *cobra.Command, name, shorthand string, def []string, help string) {
	cmd.Flags().StringSliceP(name, shorthand, def, help)
}

// ConfigKey maps a flag name into a config section: ("password",
// "exclude-similar") -> "password.exclude_similar".
func ConfigKey(section, flag string) string {
	key := strings.ReplaceAll(flag, "-", "_")
	if section == "" {
		return key
	}
	return section + "." + key
}

// BindFlagsToViper binds the command's local flags under section, so a
// flag set on the command line overrides the config file and environment.
// Flags listed in skip are left unbound.
func BindFlagsToViper(cmd *cobra.Command, v *viper.Viper, section string, skip ...string) error {
	var result error
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		for _, s := range skip {
			if s == f.Name {
				return
			}
		}
		if err := v.BindPFlag(ConfigKey(section, f.Name), f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// SetViperEnvPrefix makes nested keys readable from PREFIX_SECTION_KEY
// environment variables.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// GetStringOrEmpty returns the string value or empty string if error.
func GetStringOrEmpty(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to get flag %s: %v\n", name, err)
		return ""
	}
	return val
}

// GetBool returns a bool flag, false when it is not defined.
func GetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	return err == nil && val
}

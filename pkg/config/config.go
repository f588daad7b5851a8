// pkg/config/config.go

// Package config loads cyberkit settings. Precedence, highest first:
// command-line flag, CYBERKIT_* environment variable (also read from a
// .env file in the working directory), ~/.cyberkit/config.yaml or the file
// named by --config, built-in defaults.
package config

import (
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/digest"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/kit_err"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/minify"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/verify"
)

// ConfigFlag is the persistent flag naming an explicit config file.
const ConfigFlag = "config"

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

type Config struct {
	Password PasswordConfig `mapstructure:"password"`
	Hash     HashConfig     `mapstructure:"hash"`
	Minify   MinifyConfig   `mapstructure:"minify"`
	Output   OutputConfig   `mapstructure:"output"`
}

type PasswordConfig struct {
	Length           int  `mapstructure:"length" validate:"min=1,max=1024"`
	Uppercase        bool `mapstructure:"uppercase"`
	Lowercase        bool `mapstructure:"lowercase"`
	Numbers          bool `mapstructure:"numbers"`
	Symbols          bool `mapstructure:"symbols"`
	ExcludeSimilar   bool `mapstructure:"exclude_similar"`
	ExcludeAmbiguous bool `mapstructure:"exclude_ambiguous"`
	Count            int  `mapstructure:"count" validate:"min=1,max=100"`
}

// Options converts the section into generator options.
func (p PasswordConfig) Options() crypto.PasswordOptions {
	return crypto.PasswordOptions{
		Length:           p.Length,
		Uppercase:        p.Uppercase,
		Lowercase:        p.Lowercase,
		Numbers:          p.Numbers,
		Symbols:          p.Symbols,
		ExcludeSimilar:   p.ExcludeSimilar,
		ExcludeAmbiguous: p.ExcludeAmbiguous,
	}
}

type HashConfig struct {
	Algorithms []string `mapstructure:"algorithms" validate:"min=1,dive,digest_algorithm"`
}

type MinifyConfig struct {
	AllowComments bool `mapstructure:"allow_comments"`
	Stats         bool `mapstructure:"stats"`
}

// Options converts the section into minifier options.
func (m MinifyConfig) Options() minify.Options {
	return minify.Options{AllowComments: m.AllowComments}
}

type OutputConfig struct {
	// Color is auto (only on a terminal without NO_COLOR), always or never.
	Color string `mapstructure:"color" validate:"oneof=auto always never"`
}

// SetDefaults registers built-in values on v.
func SetDefaults(v *viper.Viper) {
	def := crypto.DefaultPasswordOptions()
	v.SetDefault("password.length", def.Length)
	v.SetDefault("password.uppercase", def.Uppercase)
	v.SetDefault("password.lowercase", def.Lowercase)
	v.SetDefault("password.numbers", def.Numbers)
	v.SetDefault("password.symbols", def.Symbols)
	v.SetDefault("password.exclude_similar", false)
	v.SetDefault("password.exclude_ambiguous", false)
	v.SetDefault("password.count", 1)

	algs := make([]string, len(digest.DefaultAlgorithms))
	for i, a := range digest.DefaultAlgorithms {
		algs[i] = string(a)
	}
	v.SetDefault("hash.algorithms", algs)

	v.SetDefault("minify.allow_comments", false)
	v.SetDefault("minify.stats", true)
	v.SetDefault("output.color", "auto")
}

// Load reads the environment, .env and config file into v, then decodes
// and validates the result. An explicit cfgFile must exist; the default
// file is optional.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, cerr.Wrapf(err, "load %s", DotEnvFile)
	}

	SetDefaults(v)
	cli.SetViperEnvPrefix(v, shared.EnvPrefix)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(shared.ConfigFileName)
		v.SetConfigType(shared.ConfigFileType)
		v.AddConfigPath(shared.StateDir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !cerr.As(err, &notFound) {
			return nil, kit_err.NewValidationErrorWithCause("cannot read config file", err,
				"Check the path passed to --config", "Config files are YAML")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, kit_err.NewValidationErrorWithCause("invalid config value", err)
	}
	if err := verify.Struct(cfg); err != nil {
		return nil, kit_err.NewValidationErrorWithCause("invalid configuration", err,
			"Fix the value in flags, CYBERKIT_* variables or the config file")
	}
	return &cfg, nil
}

// ForCommand binds cmd's flags under section and loads the configuration,
// honouring the persistent --config flag. Flags in skip are not config keys.
func ForCommand(cmd *cobra.Command, section string, skip ...string) (*Config, error) {
	v := viper.New()
	if err := cli.BindFlagsToViper(cmd, v, section, skip...); err != nil {
		return nil, kit_err.NewInternalError("bind flags", err)
	}
	cfgFile, _ := cmd.Flags().GetString(ConfigFlag)
	return Load(v, cfgFile)
}

// ConfigFileUsed reports the path Load read, empty when none.
func ConfigFileUsed(v *viper.Viper) string {
	return v.ConfigFileUsed()
}

package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/preflight/internal/errors"
	"github.com/thoreinstein/preflight/internal/manifest"
	"github.com/thoreinstein/preflight/internal/paths"
	"github.com/thoreinstein/preflight/internal/tsconfig"
)

// Config is the top-level settings structure.
type Config struct {
	Package  PackageConfig  `mapstructure:"package" yaml:"package"`
	TSConfig TSConfigConfig `mapstructure:"tsconfig" yaml:"tsconfig"`
}

// PackageConfig controls the package.json check.
type PackageConfig struct {
	File            string   `mapstructure:"file" yaml:"file"`
	RequiredFields  []string `mapstructure:"required_fields" yaml:"required_fields"`
	RequiredScripts []string `mapstructure:"required_scripts" yaml:"required_scripts"`
	OptionalScripts []string `mapstructure:"optional_scripts" yaml:"optional_scripts"`
}

// TSConfigConfig controls the tsconfig.json check.
type TSConfigConfig struct {
	File            string   `mapstructure:"file" yaml:"file"`
	RequiredFields  []string `mapstructure:"required_fields" yaml:"required_fields"`
	CompilerOptions []string `mapstructure:"compiler_options" yaml:"compiler_options"`
}

// Init resets Viper and installs the default configuration.
// Call this before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.AppName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("PREFLIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	pkg := manifest.DefaultOptions()
	viper.SetDefault("package.file", paths.PackageManifest)
	viper.SetDefault("package.required_fields", pkg.RequiredFields)
	viper.SetDefault("package.required_scripts", pkg.RequiredScripts)
	viper.SetDefault("package.optional_scripts", pkg.OptionalScripts)

	ts := tsconfig.DefaultOptions()
	viper.SetDefault("tsconfig.file", paths.CompilerConfig)
	viper.SetDefault("tsconfig.required_fields", ts.RequiredFields)
	viper.SetDefault("tsconfig.compiler_options", ts.CompilerOptions)
}

// Default returns the built-in settings without consulting Viper.
func Default() *Config {
	pkg := manifest.DefaultOptions()
	ts := tsconfig.DefaultOptions()
	return &Config{
		Package: PackageConfig{
			File:            paths.PackageManifest,
			RequiredFields:  pkg.RequiredFields,
			RequiredScripts: pkg.RequiredScripts,
			OptionalScripts: pkg.OptionalScripts,
		},
		TSConfig: TSConfigConfig{
			File:            paths.CompilerConfig,
			RequiredFields:  ts.RequiredFields,
			CompilerOptions: ts.CompilerOptions,
		},
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the default locations are searched and a
// missing file means defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Mark(errors.Newf("config file not found at %s", path), errors.ErrNotFound)
			}
			return nil, errors.Wrap(err, "reading config file")
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(&ValidationError{Errs: errs}, "validating config")
	}

	return &cfg, nil
}

// Source returns the config file Viper read, or "" when defaults are in use.
func Source() string {
	return viper.ConfigFileUsed()
}

// ManifestOptions converts the package settings for the manifest validator.
func (c *Config) ManifestOptions(logger *slog.Logger) manifest.Options {
	return manifest.Options{
		RequiredFields:  c.Package.RequiredFields,
		RequiredScripts: c.Package.RequiredScripts,
		OptionalScripts: c.Package.OptionalScripts,
		Logger:          logger,
	}
}

// TSConfigOptions converts the tsconfig settings for the tsconfig validator.
func (c *Config) TSConfigOptions(logger *slog.Logger) tsconfig.Options {
	return tsconfig.Options{
		RequiredFields:  c.TSConfig.RequiredFields,
		CompilerOptions: c.TSConfig.CompilerOptions,
		Logger:          logger,
	}
}

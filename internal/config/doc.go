// Package config loads preflight settings using Viper.
//
// Settings are optional. Without a config file, preflight checks
// package.json and tsconfig.json with the built-in field lists. A file named
// preflight.yaml is looked up in the working directory and then in the XDG
// config directory:
//
//	$XDG_CONFIG_HOME/preflight/preflight.yaml
//
// The file may override the checked file names and any of the field lists:
//
//	package:
//	  file: package.json
//	  required_fields: [name, version, scripts]
//	  required_scripts: [build, lint]
//	  optional_scripts: [test, dev, start, deploy]
//	tsconfig:
//	  file: tsconfig.json
//	  required_fields: [compilerOptions]
//	  compiler_options: [target, module, moduleResolution]
//
// Every key can also be set through the environment with the PREFLIGHT_
// prefix, dots replaced by underscores, for example
// PREFLIGHT_PACKAGE_REQUIRED_SCRIPTS=build,lint,typecheck.
//
// A list that is set replaces the default list; it is not merged with it.
package config

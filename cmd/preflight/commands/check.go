package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/preflight/internal/check"
	"github.com/thoreinstein/preflight/internal/config"
	"github.com/thoreinstein/preflight/internal/errors"
	"github.com/thoreinstein/preflight/internal/logging"
	"github.com/thoreinstein/preflight/internal/manifest"
	"github.com/thoreinstein/preflight/internal/paths"
	"github.com/thoreinstein/preflight/internal/tsconfig"
	"github.com/thoreinstein/preflight/internal/validator"
)

var (
	checkDir    string
	checkFormat string
)

func init() {
	addCheckFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

// addCheckFlags registers the check flags on c. The root command carries
// them too so a bare "preflight" accepts them.
func addCheckFlags(c *cobra.Command) {
	c.Flags().StringVar(&checkDir, "dir", ".",
		"directory containing package.json and tsconfig.json")
	c.Flags().StringVar(&checkFormat, "format", string(validator.FormatText),
		"report format: text, json, yaml")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate package.json and tsconfig.json",
	Long: `Validate package.json and tsconfig.json in a project directory.

package.json must define name, version and scripts, and scripts must
include build and lint. Missing test, dev, start or deploy scripts are
reported as warnings.

tsconfig.json may contain // and /* */ comments. It must define
compilerOptions; missing target, module or moduleResolution options are
reported as warnings.

Both files are always checked, even when the first one fails. Comment
markers inside strings (such as "http://...") are not recognized and
make tsconfig.json fail to parse.`,
	Example: `  # Check the current directory
  preflight check

  # Machine-readable report
  preflight check --format yaml > preflight-report.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format, err := validator.ParseFormat(checkFormat)
	if err != nil {
		return errors.NewUserError(err, "Valid formats: text, json, yaml")
	}

	cfg := settings
	if cfg == nil {
		cfg = config.Default()
	}

	logger := logging.FromContext(cmd.Context())
	runner := newRunner(cfg, checkDir, logger)
	logger.Info("checking configuration", "dir", checkDir, "files", runner.Len())

	report := runner.Run()

	// Quiet text mode prints only failures.
	if !(quiet && format == validator.FormatText && report.OK()) {
		reporter := validator.NewReporter(cmd.OutOrStdout(), format)
		if err := reporter.Report(report.Results); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "writing report"), "")
		}
	}

	if !report.OK() {
		logger.Debug("checks failed", "errors", report.Summary.Errors)
		return errors.NewUserError(errors.ErrValidationFailed, "")
	}
	return nil
}

// newRunner registers the package.json check followed by the tsconfig.json
// check, both resolved against dir.
func newRunner(cfg *config.Config, dir string, logger *slog.Logger) *check.Runner {
	pkg := manifest.New(cfg.ManifestOptions(logger))
	ts := tsconfig.New(cfg.TSConfigOptions(logger))

	runner := check.NewRunner(logger)
	runner.AddCheck(check.NewFileCheck("package", paths.Resolve(dir, cfg.Package.File), pkg.Validate))
	runner.AddCheck(check.NewFileCheck("tsconfig", paths.Resolve(dir, cfg.TSConfig.File), ts.Validate))
	return runner
}

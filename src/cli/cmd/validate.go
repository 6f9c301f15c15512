package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/config"
	"github.com/swat4julia/swatfreight/src/ini"
	"github.com/swat4julia/swatfreight/src/output"
	"github.com/swat4julia/swatfreight/src/secrets"
)

var validateSecrets bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for errors",
	Long: `Check kits, roles, paths, git references, server settings and the
dist version. Exits non-zero on any error.

--secrets also scans the config file and the rendered server settings
for embedded credentials.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateSecrets, "secrets", false, "scan config and settings for credentials")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	color := output.UseColor()
	start := time.Now()

	warnings, verr := config.Validate(cfg)
	var errs []string
	var ve *config.ValidationError
	if errors.As(verr, &ve) {
		errs = append(errs, ve.Problems...)
	} else if verr != nil {
		return verr
	}

	var findings []secrets.Finding
	if validateSecrets {
		var err error
		findings, err = scanSecrets()
		if err != nil {
			return err
		}
	}

	sec := output.NewSection(w, "Validate", time.Since(start), color)
	output.Problems(sec, warnings, errs, color)
	for _, f := range findings {
		errs = append(errs, f.Message)
		sec.Row("%s %s:%d %s", output.StatusFailed.Icon(color), f.Source, f.Line, f.Message)
	}
	if len(errs) > 0 || len(warnings) > 0 {
		sec.Separator()
	}
	status := output.StatusOK
	if len(errs) > 0 {
		status = output.StatusFailed
	}
	sec.Summary("config", status, output.SummaryLine(len(errs), len(warnings)))
	sec.Close()

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %d errors", len(errs))
	}
	return nil
}

func scanSecrets() ([]secrets.Finding, error) {
	scanner, err := secrets.NewScanner()
	if err != nil {
		return nil, fmt.Errorf("secrets: %w", err)
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultFile
	}

	var findings []secrets.Finding
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		findings = append(findings, scanner.Scan(path, data)...)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	sections, err := cfg.Server.Sections()
	if err != nil {
		// already reported by Validate
		return findings, nil
	}
	findings = append(findings, scanner.Scan("server.settings", ini.RenderBytes(sections))...)
	return findings, nil
}

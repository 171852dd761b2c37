package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/localelint/internal/adapters/outbound/config"
	"github.com/abdidvp/localelint/internal/adapters/outbound/finder"
	"github.com/abdidvp/localelint/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/localelint/internal/adapters/outbound/reader"
	"github.com/abdidvp/localelint/internal/adapters/outbound/tui"
	"github.com/abdidvp/localelint/internal/application"
	"github.com/abdidvp/localelint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		changed    bool
		baseRef    string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "validate [file1 file2 ...]",
		Short: "Validate locale files and report every violation",
		Long:  "Validate the given locale files, or discover candidates from the configured paths when no files are given. Exits non-zero if any file has violations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if baseRef != "" {
				cfg.BaseRef = baseRef
			}

			files := args
			if len(files) == 0 {
				discoverSvc := application.NewDiscoverService(finder.New(), gitinfo.New(), logger)
				files, err = discoverSvc.Candidates(absPath, cfg, changed)
				if err != nil {
					return fmt.Errorf("discovering candidates: %w", err)
				}
			}

			engine := domain.NewEngine(cfg.RuleSet()...)
			validateSvc := application.NewValidateService(engine, reader.New(absPath), logger)
			report := validateSvc.ValidateFiles(files)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.Success() {
				return fmt.Errorf("validation failed: %d of %d file(s) have violations",
					report.Failures(), len(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&changed, "changed", false, "Only validate files changed relative to the git base ref")
	cmd.Flags().StringVar(&baseRef, "base", "", "Git base ref for --changed (defaults to config base_ref)")
	cmd.Flags().StringVar(&path, "path", ".", "Project root")

	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/localelint/internal/adapters/outbound/config"
	"github.com/abdidvp/localelint/internal/adapters/outbound/tui"
)

// ruleInfo is the serializable view of a rule: everything but the check
// function itself.
type ruleInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

func newRulesCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List validation rules and whether they are enabled",
		Long:  "List the validation rule set in evaluation order, with the project config's enable/disable toggles applied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			rules := cfg.RuleSet()
			if jsonOutput {
				infos := make([]ruleInfo, len(rules))
				for i, r := range rules {
					infos[i] = ruleInfo{Name: r.Name, Category: r.Category, Enabled: r.Enabled}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project root")

	return cmd
}

package application

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abdidvp/localelint/internal/domain"
)

// DiscoverService resolves the candidate file set for validation: the
// configured paths, optionally narrowed to files changed against a git base
// ref.
type DiscoverService struct {
	finder  domain.CandidateFinder
	changes domain.ChangeDetector
	log     zerolog.Logger
}

// NewDiscoverService creates a DiscoverService.
func NewDiscoverService(finder domain.CandidateFinder, changes domain.ChangeDetector, log zerolog.Logger) *DiscoverService {
	return &DiscoverService{finder: finder, changes: changes, log: log}
}

// Candidates lists candidate files under projectPath. With changedOnly set,
// only files changed relative to cfg.BaseRef are kept, in finder order.
func (s *DiscoverService) Candidates(projectPath string, cfg domain.Config, changedOnly bool) ([]string, error) {
	candidates, err := s.finder.Find(projectPath, cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("finding candidate files: %w", err)
	}
	s.log.Debug().Int("candidates", len(candidates)).Strs("paths", cfg.Paths).Msg("discovered")

	if !changedOnly {
		return candidates, nil
	}

	changed, err := s.changes.ChangedFiles(projectPath, cfg.BaseRef)
	if err != nil {
		return nil, fmt.Errorf("detecting changed files: %w", err)
	}

	changedSet := make(map[string]bool, len(changed))
	for _, f := range changed {
		changedSet[f] = true
	}

	var out []string
	for _, f := range candidates {
		if changedSet[f] {
			out = append(out, f)
		}
	}
	s.log.Debug().Int("changed", len(out)).Str("base", cfg.BaseRef).Msg("narrowed to changed files")
	return out, nil
}

package application

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abdidvp/localelint/internal/domain"
)

// Source is one candidate document handed to the engine: a path for
// reporting plus the raw bytes read for it.
type Source struct {
	Path string
	Data []byte
}

// ValidateService runs the rule engine over candidate files and assembles
// the aggregate report in input order.
type ValidateService struct {
	engine *domain.Engine
	reader domain.FileReader
	log    zerolog.Logger
}

// NewValidateService creates a ValidateService.
func NewValidateService(engine *domain.Engine, reader domain.FileReader, log zerolog.Logger) *ValidateService {
	return &ValidateService{engine: engine, reader: reader, log: log}
}

// ValidateFiles reads and validates each path in order. A read failure
// becomes a single synthetic violation for that file; sibling files are
// unaffected. The report holds one entry per path, in input order.
func (s *ValidateService) ValidateFiles(paths []string) domain.Report {
	report := make(domain.Report, 0, len(paths))
	for _, path := range paths {
		report = append(report, s.validatePath(path))
	}
	return report
}

// ValidateSources validates explicit (path, bytes) pairs, for callers that
// obtain file contents themselves.
func (s *ValidateService) ValidateSources(sources []Source) domain.Report {
	report := make(domain.Report, 0, len(sources))
	for _, src := range sources {
		report = append(report, s.validateSource(src))
	}
	return report
}

func (s *ValidateService) validatePath(path string) domain.FileResult {
	data, err := s.reader.ReadFile(path)
	if err != nil {
		s.log.Debug().Str("file", path).Err(err).Msg("read failed")
		return domain.FileResult{File: path, Violations: []domain.Violation{{
			Category: domain.CategoryIO,
			Message:  fmt.Sprintf("File reading error: %v", err),
		}}}
	}
	return s.validateSource(Source{Path: path, Data: data})
}

// validateSource recovers from engine-internal panics so one broken file
// never aborts validation of the rest.
func (s *ValidateService) validateSource(src Source) (result domain.FileResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("file", src.Path).Interface("panic", r).Msg("engine fault")
			result = domain.FileResult{File: src.Path, Violations: []domain.Violation{{
				Category: domain.CategoryInternal,
				Message:  fmt.Sprintf("Internal error validating file: %v", r),
			}}}
		}
	}()

	result = s.engine.ValidateFile(src.Path, src.Data)
	s.log.Debug().Str("file", src.Path).Int("violations", len(result.Violations)).Msg("validated")
	return result
}

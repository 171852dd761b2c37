package application_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/localelint/internal/application"
	"github.com/abdidvp/localelint/internal/domain"
)

type stubFinder struct {
	files []string
	err   error
}

func (f stubFinder) Find(root string, paths []string) ([]string, error) {
	return f.files, f.err
}

type stubChanges struct {
	files []string
	err   error
}

func (c stubChanges) ChangedFiles(projectPath, baseRef string) ([]string, error) {
	return c.files, c.err
}

func TestCandidates_AllFiles(t *testing.T) {
	svc := application.NewDiscoverService(
		stubFinder{files: []string{"locales/de-DE.json", "locales/en-US.json"}},
		stubChanges{},
		zerolog.Nop(),
	)

	files, err := svc.Candidates(".", domain.DefaultConfig(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"locales/de-DE.json", "locales/en-US.json"}, files)
}

func TestCandidates_ChangedOnlyKeepsFinderOrder(t *testing.T) {
	svc := application.NewDiscoverService(
		stubFinder{files: []string{"locales/de-DE.json", "locales/en-US.json", "locales/fr-FR.json"}},
		stubChanges{files: []string{"locales/fr-FR.json", "locales/de-DE.json", "README.md"}},
		zerolog.Nop(),
	)

	files, err := svc.Candidates(".", domain.DefaultConfig(), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"locales/de-DE.json", "locales/fr-FR.json"}, files,
		"non-candidate changes are dropped, candidate order kept")
}

func TestCandidates_FinderError(t *testing.T) {
	svc := application.NewDiscoverService(
		stubFinder{err: errors.New("walk failed")},
		stubChanges{},
		zerolog.Nop(),
	)

	_, err := svc.Candidates(".", domain.DefaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finding candidate files")
}

func TestCandidates_ChangeDetectorError(t *testing.T) {
	svc := application.NewDiscoverService(
		stubFinder{files: []string{"locales/en-US.json"}},
		stubChanges{err: errors.New("not a git repo")},
		zerolog.Nop(),
	)

	_, err := svc.Candidates(".", domain.DefaultConfig(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detecting changed files")
}

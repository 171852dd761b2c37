package domain

// FileReader reads raw bytes for one candidate file.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// CandidateFinder lists candidate locale files under the configured paths,
// relative to the project root.
type CandidateFinder interface {
	Find(root string, paths []string) ([]string, error)
}

// ChangeDetector lists files changed relative to a git base ref, including
// uncommitted worktree changes.
type ChangeDetector interface {
	ChangedFiles(projectPath, baseRef string) ([]string, error)
}

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

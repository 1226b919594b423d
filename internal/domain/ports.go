package domain

// EnvelopeLoader reads and validates a tool-output envelope.
type EnvelopeLoader interface {
	Load(path string) (*Envelope, error)
}

// GroundTruthLoader reads ground-truth documents keyed by scenario id.
type GroundTruthLoader interface {
	Load(dir string) (map[string]*GroundTruth, error)
}

// ConfigLoader reads the per-tool engine configuration.
type ConfigLoader interface {
	Load(dir string) (EvalConfig, error)
}

// ReportStore persists evaluation reports and their history.
type ReportStore interface {
	Save(dir string, report *EvaluationReport) error
	Latest(dir string) (*EvaluationReport, error)
	History(dir string) ([]ReportEntry, error)
}

// GitInfo reads version-control metadata for report stamping.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

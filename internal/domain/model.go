package domain

import "time"

// Decision is the categorical verdict derived from a numeric score.
// It is never stored apart from the score that produced it.
type Decision string

const (
	DecisionStrongPass Decision = "STRONG_PASS"
	DecisionPass       Decision = "PASS"
	DecisionWeakPass   Decision = "WEAK_PASS"
	DecisionFail       Decision = "FAIL"
)

// Passing reports whether the decision maps to a zero exit status.
func (d Decision) Passing() bool {
	return d == DecisionStrongPass || d == DecisionPass
}

// ExitCode returns the process exit status for a decision.
func (d Decision) ExitCode() int {
	if d.Passing() {
		return 0
	}
	return 1
}

// CheckResult is the outcome of a single deterministic check.
// Immutable once created; CheckID is unique within a run.
type CheckResult struct {
	CheckID  string         `json:"check_id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Passed   bool           `json:"passed"`
	Score    float64        `json:"score"` // 0.0-1.0
	Message  string         `json:"message"`
	Skipped  bool           `json:"skipped,omitempty"`
	Evidence map[string]any `json:"evidence,omitempty"`
}

// SkipResult builds the neutral-pass result for a check whose ground truth
// is absent. Skipping scores 1.0 so a tool is not penalized for scope it
// never claimed.
func SkipResult(checkID, name, category, reason string) CheckResult {
	return CheckResult{
		CheckID:  checkID,
		Name:     name,
		Category: category,
		Passed:   true,
		Score:    1.0,
		Skipped:  true,
		Message:  "skipped: " + reason,
	}
}

// FailResult builds a failing result for a check that could not complete.
func FailResult(checkID, name, category, message string) CheckResult {
	return CheckResult{
		CheckID:  checkID,
		Name:     name,
		Category: category,
		Passed:   false,
		Score:    0.0,
		Message:  message,
	}
}

// JudgeResult is one semantic judgment over an evidence bundle.
// Score is on the judge-native 1-5 scale.
type JudgeResult struct {
	Dimension           string         `json:"dimension"`
	Score               int            `json:"score"`
	Weight              float64        `json:"weight"`
	WeightedScore       float64        `json:"weighted_score"`
	Confidence          float64        `json:"confidence"`
	Reasoning           string         `json:"reasoning"`
	EvidenceCited       []string       `json:"evidence_cited,omitempty"`
	Recommendations     []string       `json:"recommendations,omitempty"`
	SubScores           map[string]int `json:"sub_scores,omitempty"`
	GroundTruthPassed   bool           `json:"ground_truth_passed"`
	GroundTruthFailures []string       `json:"ground_truth_failures,omitempty"`
	RawResponse         string         `json:"-"`
}

// SemanticResult aggregates all judge dimensions for one run.
type SemanticResult struct {
	TraceID       string        `json:"trace_id"`
	Model         string        `json:"model"`
	Dimensions    []JudgeResult `json:"dimensions"`
	Score         float64       `json:"score"` // weighted mean, 1-5
	AvgConfidence float64       `json:"avg_confidence"`
}

// Summary is the machine-readable digest of one evaluation run.
type Summary struct {
	Passed          int                `json:"passed"`
	Failed          int                `json:"failed"`
	Skipped         int                `json:"skipped"`
	Total           int                `json:"total"`
	Score           float64            `json:"score"` // programmatic, 0-1
	CombinedScore   float64            `json:"combined_score"`
	Decision        Decision           `json:"decision"`
	ScoreByCategory map[string]float64 `json:"score_by_category"`
}

// EvaluationReport owns the ordered CheckResults of one run plus the
// optional semantic layer. Built once per invocation, never mutated after
// construction, serialized as the canonical JSON artifact.
type EvaluationReport struct {
	Tool        string          `json:"tool"`
	ToolVersion string          `json:"tool_version,omitempty"`
	RunID       string          `json:"run_id"`
	RepoID      string          `json:"repo_id,omitempty"`
	CommitHash  string          `json:"commit_hash,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Summary     Summary         `json:"summary"`
	Checks      []CheckResult   `json:"checks"`
	Semantic    *SemanticResult `json:"semantic,omitempty"`
}

// ReportEntry is one line of persisted report history.
type ReportEntry struct {
	Timestamp  string   `json:"timestamp"`
	RunID      string   `json:"run_id"`
	CommitHash string   `json:"commit_hash,omitempty"`
	Score      float64  `json:"score"`
	Decision   Decision `json:"decision"`
}

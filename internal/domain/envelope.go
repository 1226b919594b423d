package domain

import (
	"fmt"
	"time"
)

// EnvelopeMetadata is the standard metadata block every analysis tool
// wraps around its output.
type EnvelopeMetadata struct {
	ToolName      string    `json:"tool_name"`
	ToolVersion   string    `json:"tool_version"`
	RunID         string    `json:"run_id"`
	RepoID        string    `json:"repo_id"`
	Branch        string    `json:"branch,omitempty"`
	Commit        string    `json:"commit,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	SchemaVersion string    `json:"schema_version"`
}

// Envelope is the metadata+data wrapper produced by an analysis tool.
// The data block is tool-specific; checks navigate it defensively.
type Envelope struct {
	Metadata EnvelopeMetadata `json:"metadata"`
	Data     map[string]any   `json:"data"`
}

// Validate reports whether the envelope is usable at all. A malformed
// envelope fails the whole run; it must not degrade into a near-zero score
// that could be mistaken for a bad tool.
func (e *Envelope) Validate() error {
	if e == nil || e.Data == nil {
		return fmt.Errorf("envelope has no data block")
	}
	if e.Metadata.ToolName == "" {
		return fmt.Errorf("envelope missing metadata.tool_name")
	}
	if e.Metadata.RunID == "" {
		return fmt.Errorf("envelope missing metadata.run_id")
	}
	if e.Metadata.SchemaVersion == "" {
		return fmt.Errorf("envelope missing metadata.schema_version")
	}
	return nil
}

// Finding is the generic scored, categorized record the engine understands.
// Tool-specific fields stay in Extra.
type Finding struct {
	ID       string         `json:"id,omitempty"`
	Category string         `json:"category"`
	Severity string         `json:"severity,omitempty"`
	Path     string         `json:"path,omitempty"`
	Message  string         `json:"message,omitempty"`
	Extra    map[string]any `json:"-"`
}

// Findings extracts the finding records from the data block, tolerating
// the layouts tools actually emit: data.findings, data.results.findings,
// and data.results as a bare list.
func (e *Envelope) Findings() []Finding {
	if e == nil || e.Data == nil {
		return nil
	}
	if raw, ok := e.Data["findings"]; ok {
		return decodeFindings(raw)
	}
	if results, ok := e.Data["results"].(map[string]any); ok {
		if raw, ok := results["findings"]; ok {
			return decodeFindings(raw)
		}
	}
	if raw, ok := e.Data["results"].([]any); ok {
		return decodeFindings(raw)
	}
	return nil
}

// SummaryBlock extracts the tool's own summary counters, tolerating
// data.summary and data.results.summary layouts.
func (e *Envelope) SummaryBlock() map[string]any {
	if e == nil || e.Data == nil {
		return nil
	}
	if s, ok := e.Data["summary"].(map[string]any); ok {
		return s
	}
	if results, ok := e.Data["results"].(map[string]any); ok {
		if s, ok := results["summary"].(map[string]any); ok {
			return s
		}
	}
	return nil
}

// IntField reads an integer from a loosely-typed JSON map. JSON numbers
// decode as float64, so both forms are accepted.
func IntField(m map[string]any, key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// FloatField reads a float from a loosely-typed JSON map.
func FloatField(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func decodeFindings(raw any) []Finding {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	findings := make([]Finding, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := Finding{Extra: m}
		if s, ok := m["id"].(string); ok {
			f.ID = s
		}
		if s, ok := m["category"].(string); ok {
			f.Category = s
		}
		if s, ok := m["severity"].(string); ok {
			f.Severity = s
		}
		if s, ok := m["path"].(string); ok {
			f.Path = s
		}
		if s, ok := m["message"].(string); ok {
			f.Message = s
		}
		findings = append(findings, f)
	}
	return findings
}

package utilcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string       `json:"version"`
	Timestamp   string       `json:"timestamp"`
	Summary     JSONSummary  `json:"summary"`
	Rules       []JSONRule   `json:"rules"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Candidates   int `json:"candidates"`
	Rules        int `json:"rules"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONRule is one generated rule.
type JSONRule struct {
	Class        string            `json:"class"`
	Selector     string            `json:"selector"`
	Media        string            `json:"media,omitempty"`
	Tier         string            `json:"tier"`
	Declarations []JSONDeclaration `json:"declarations"`
}

// JSONDeclaration is a property/value pair of a rule.
type JSONDeclaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// WriteJSON writes the generation result as JSON
func WriteJSON(w io.Writer, result *Result, stats ScanStats) error {
	output := buildJSONOutput(result, stats)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Result to JSONOutput
func buildJSONOutput(result *Result, stats ScanStats) JSONOutput {
	rules := make([]JSONRule, len(result.Rules))
	for i, rule := range result.Rules {
		decls := make([]JSONDeclaration, len(rule.Declarations))
		for j, d := range rule.Declarations {
			decls[j] = JSONDeclaration{Property: d.Property, Value: d.Value}
		}
		rules[i] = JSONRule{
			Class:        rule.Class,
			Selector:     rule.Selector,
			Media:        rule.Media,
			Tier:         rule.Tier.String(),
			Declarations: decls,
		}
	}

	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Candidates:   result.Candidates,
			Rules:        len(result.Rules),
			Errors:       len(result.Errors()),
			Warnings:     len(result.Warnings()),
			FilesScanned: stats.FilesScanned,
		},
		Rules:       rules,
		Diagnostics: diagnostics,
	}
}

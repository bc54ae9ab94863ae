package utilcss

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputFormat
		wantErr bool
	}{
		{name: "", want: OutputText},
		{name: "text", want: OutputText},
		{name: "json", want: OutputJSON},
		{name: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func reportResult(t *testing.T) *Result {
	t.Helper()
	return newTestGenerator(t).Generate([]string{"p(sm)", "bg(blue-500", "zz-unknown"})
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, reportResult(t), ReportOptions{
		Format: OutputText,
		Stats:  ScanStats{FilesScanned: 2},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "unclosed '('")
	assert.Contains(t, out, `unknown rule "zz-unknown"`)
	assert.Contains(t, out, "1 rule generated from 2 files (1 error, 1 warning)")
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, reportResult(t), ReportOptions{
		Format: OutputJSON,
		Stats:  ScanStats{FilesScanned: 2},
	})
	require.NoError(t, err)

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, JSONSummary{Candidates: 3, Rules: 1, Errors: 1, Warnings: 1, FilesScanned: 2}, out.Summary)

	require.Len(t, out.Rules, 1)
	assert.Equal(t, JSONRule{
		Class:        "p(sm)",
		Selector:     `.p\(sm\)`,
		Tier:         "current",
		Declarations: []JSONDeclaration{{Property: "padding", Value: "var(--spacing-sm)"}},
	}, out.Rules[0])

	require.Len(t, out.Diagnostics, 2)
	assert.Equal(t, "bg(blue-500", out.Diagnostics[0].Class)
	assert.Equal(t, 2, out.Diagnostics[0].Offset)
	assert.Equal(t, SeverityWarning, out.Diagnostics[1].Severity)
}

func TestWriteJSONEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Result{}, ScanStats{}))
	assert.Contains(t, buf.String(), `"diagnostics": []`)
	assert.Contains(t, buf.String(), `"rules": []`)
}

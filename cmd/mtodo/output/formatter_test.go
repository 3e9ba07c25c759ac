package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"mtodo/internal/application/dto"
)

func sampleTasks() []dto.TaskDTO {
	return []dto.TaskDTO{
		{Position: 1, Kind: "todo", Description: "read book", Display: "[T][ ] read book"},
		{Position: 2, Kind: "deadline", Description: "submit", Date: "2024-01-15", Display: "[D][ ] submit (by: 2024-01-15)"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatterText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatText, &buf).Print(sampleTasks()); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	want := "1. [T][ ] read book\n2. [D][ ] submit (by: 2024-01-15)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatJSON, &buf).Print(sampleTasks()); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	var decoded []dto.TaskDTO
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Date != "2024-01-15" {
		t.Errorf("unexpected decoded tasks: %+v", decoded)
	}
}

func TestFormatterYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatYAML, &buf).Print(sampleTasks()); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "description: read book") {
		t.Errorf("expected yaml field, got\n%s", buf.String())
	}

	var decoded []dto.TaskDTO
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if decoded[0].Kind != "todo" {
		t.Errorf("expected todo kind, got %q", decoded[0].Kind)
	}
}

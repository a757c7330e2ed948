package interpreter

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		ok       bool
		function string
		output   string
	}{
		{
			name:     "direct JSON",
			raw:      `{"function": "create_project", "function_arg": {"name": "Website Development"}, "output": "Created."}`,
			ok:       true,
			function: "create_project",
			output:   "Created.",
		},
		{
			name: "markdown code block",
			raw: "```json\n" +
				`{"function": "delete_task", "function_arg": {"task_identifier": "3"}, "output": "Deleted."}` +
				"\n```",
			ok:       true,
			function: "delete_task",
			output:   "Deleted.",
		},
		{
			name:     "commentary around object",
			raw:      `Sure! {"function": "recommend_task", "function_arg": {}, "output": "Work on UI design."} Hope that helps.`,
			ok:       true,
			function: "recommend_task",
			output:   "Work on UI design.",
		},
		{
			name: "no JSON at all",
			raw:  "I can't help with that.",
			ok:   false,
		},
		{
			name: "braces but unparseable",
			raw:  "{not json}",
			ok:   false,
		},
		{
			name:     "missing keys decode to zero values",
			raw:      `{"function": "discuss"}`,
			ok:       true,
			function: "discuss",
			output:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := parseCommand(tt.raw)
			if ok != tt.ok {
				t.Fatalf("parseCommand() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if cmd.Function != tt.function {
				t.Errorf("Function = %q, want %q", cmd.Function, tt.function)
			}
			if cmd.Output != tt.output {
				t.Errorf("Output = %q, want %q", cmd.Output, tt.output)
			}
		})
	}
}

func TestCommandArg(t *testing.T) {
	cmd := Command{FunctionArg: map[string]any{
		"name":     "Website Development",
		"priority": "",
		"count":    3.0,
	}}

	if got := cmd.arg("name"); got != "Website Development" {
		t.Errorf("arg(name) = %q, want %q", got, "Website Development")
	}
	if got := cmd.arg("missing"); got != "" {
		t.Errorf("arg(missing) = %q, want empty", got)
	}
	if got := cmd.arg("count"); got != "" {
		t.Errorf("arg(count) = %q, want empty for non-string", got)
	}

	if got := cmd.optionalArg("name"); got == nil || *got != "Website Development" {
		t.Errorf("optionalArg(name) = %v, want pointer to name", got)
	}
	if got := cmd.optionalArg("priority"); got != nil {
		t.Errorf("optionalArg(empty) = %q, want nil", *got)
	}
	if got := cmd.optionalArg("missing"); got != nil {
		t.Errorf("optionalArg(missing) = %q, want nil", *got)
	}
}

func TestExtractFromCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "missing closing fence",
			input:    "```json\n{\"a\": 1}",
			expected: `{"a": 1}`,
		},
		{
			name:     "single line",
			input:    "```",
			expected: "```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractFromCodeBlock(tt.input); got != tt.expected {
				t.Errorf("extractFromCodeBlock() = %q, want %q", got, tt.expected)
			}
		})
	}
}

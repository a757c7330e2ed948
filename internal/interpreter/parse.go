package interpreter

import (
	"encoding/json"
	"strings"
)

// Command is the JSON command object the model is instructed to return.
// Absent keys decode to zero values.
type Command struct {
	Function    string         `json:"function"`
	FunctionArg map[string]any `json:"function_arg"`
	Output      string         `json:"output"`
}

// arg returns a string argument by key, or "" when absent or not a string.
func (c *Command) arg(key string) string {
	if s, ok := c.FunctionArg[key].(string); ok {
		return s
	}
	return ""
}

// optionalArg returns a string argument by key, or nil when absent or empty.
func (c *Command) optionalArg(key string) *string {
	if s, ok := c.FunctionArg[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

// parseCommand parses the model's raw response into a Command. It tries a
// direct parse first (after stripping any markdown code fences), then falls
// back to the span between the first '{' and the last '}'. Reports whether
// a command could be recovered.
func parseCommand(raw string) (Command, bool) {
	text := strings.TrimSpace(raw)

	// Handle markdown code blocks
	if strings.HasPrefix(text, "```") {
		text = extractFromCodeBlock(text)
	}

	var cmd Command
	if err := json.Unmarshal([]byte(text), &cmd); err == nil {
		return cmd, true
	}

	// The model sometimes wraps the object in commentary; try the
	// outermost brace span.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return Command{}, false
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &cmd); err != nil {
		return Command{}, false
	}
	return cmd, true
}

// extractFromCodeBlock extracts content from a markdown code block.
func extractFromCodeBlock(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	// Remove first line (```json or ```)
	start := 1
	// Remove last line if it's ```
	end := len(lines)
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		end = len(lines) - 1
	}

	return strings.Join(lines[start:end], "\n")
}

package core

import (
	"encoding/json"
	"regexp"
	"strings"
)

// commandPattern matches a "/name" prefix with optional argument text.
// Anything that does not match is treated as plain chat and falls
// through to the say command.
var commandPattern = regexp.MustCompile(`(?i)^/(\w+)(?:\s(.+))?$`)

// Command is a parsed client instruction, consumed synchronously by
// dispatch.
type Command struct {
	Name  string
	Value string
}

// parsePayload turns a raw inbound frame into a Command. The second
// return value is false for malformed payloads: binary frames, or JSON
// objects that do not carry a string "command" field.
//
// Text payloads starting with "{" that decode to a JSON object take the
// structured {command, value} escape hatch for non-text clients; any
// other text is a command line or plain chat.
func parsePayload(data []byte, binary bool) (Command, bool) {
	if binary {
		return Command{}, false
	}

	text := string(data)
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		var structured struct {
			Command string `json:"command"`
			Value   string `json:"value"`
		}
		if err := json.Unmarshal([]byte(trimmed), &structured); err != nil || structured.Command == "" {
			return Command{}, false
		}
		return Command{Name: strings.ToLower(structured.Command), Value: structured.Value}, true
	}

	if m := commandPattern.FindStringSubmatch(text); m != nil {
		return Command{Name: strings.ToLower(m[1]), Value: m[2]}, true
	}

	return Command{Name: "say", Value: text}, true
}

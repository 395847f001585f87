package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Frame is the result of decoding one inbound client message: exactly one
// of State or Command is non-nil.
type Frame struct {
	State   *SessionState
	Command *Command
}

// Decode implements §4.I's untagged-union parse: a frame carrying a
// top-level "command" key is a Command, anything else is a full
// SessionState. Malformed frames return an error; the caller logs and
// keeps the connection open rather than closing it.
func Decode(data []byte) (Frame, error) {
	var probe struct {
		Command *string `json:"command"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Frame{}, fmt.Errorf("wire: malformed frame: %w", err)
	}
	if probe.Command != nil {
		var cmd Command
		if err := strictUnmarshal(data, &cmd); err != nil {
			return Frame{}, fmt.Errorf("wire: malformed command frame: %w", err)
		}
		return Frame{Command: &cmd}, nil
	}

	var state SessionState
	if err := strictUnmarshal(data, &state); err != nil {
		return Frame{}, fmt.Errorf("wire: malformed state frame: %w", err)
	}
	return Frame{State: &state}, nil
}

// strictUnmarshal rejects unknown top-level fields so a garbled frame fails
// loudly instead of silently dropping data.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Encode serializes a SessionState as the server sends it to clients.
func Encode(state SessionState) ([]byte, error) {
	return json.Marshal(state)
}

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when a configuration is not a JSON object
var ErrNotObject = errors.New("configuration is not a JSON object")

// ExecutionConfig is a named, otherwise opaque set of execution parameters
type ExecutionConfig struct {
	Name string          // Optional display name
	Raw  json.RawMessage // The full configuration object as read
}

// UnmarshalJSON keeps the whole object and picks up "name" when it is a string.
func (c *ExecutionConfig) UnmarshalJSON(data []byte) error {
	if !IsObject(data) {
		return ErrNotObject
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	c.Name = ""
	if raw, ok := fields["name"]; ok {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			c.Name = name
		}
	}
	c.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the configuration back unchanged
func (c ExecutionConfig) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		if c.Name == "" {
			return []byte("{}"), nil
		}
		return json.Marshal(map[string]string{"name": c.Name})
	}
	return c.Raw, nil
}

// Label returns the display label for the configuration at the given 0-based position
func (c ExecutionConfig) Label(index int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("Configuration #%d", index+1)
}

// DisplayName returns the name, or a neutral label for unnamed configurations
func (c ExecutionConfig) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "unnamed configuration"
}

// Detail returns the configuration serialized on a single line
func (c ExecutionConfig) Detail() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}

// ExecutionConfigGroup is a list of configurations plus the name of the default one
type ExecutionConfigGroup struct {
	Items   []ExecutionConfig `json:"items"`
	Default string            `json:"default"`
}

// UnmarshalJSON decodes a group, skipping items that are not JSON objects
func (g *ExecutionConfigGroup) UnmarshalJSON(data []byte) error {
	var raw struct {
		Items   []json.RawMessage `json:"items"`
		Default string            `json:"default"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	g.Default = raw.Default
	g.Items = nil
	for _, item := range raw.Items {
		if !IsObject(item) {
			continue
		}
		var c ExecutionConfig
		if err := json.Unmarshal(item, &c); err != nil {
			return err
		}
		g.Items = append(g.Items, c)
	}
	return nil
}

// IsObject reports whether a JSON value is an object
func IsObject(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b == '{'
	}
	return false
}

// LegacyDocument is the deprecated on-disk layout with separate run and debug groups
type LegacyDocument struct {
	Run   ExecutionConfigGroup `json:"run"`
	Debug ExecutionConfigGroup `json:"debug"`
}

// Group returns the debug group when isDebug is set, the run group otherwise
func (d *LegacyDocument) Group(isDebug bool) ExecutionConfigGroup {
	if isDebug {
		return d.Debug
	}
	return d.Run
}

package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StageMap is a stage-name to color object that keeps key order through
// JSON and YAML round trips. A repeated key overwrites the earlier value in
// its original position.
type StageMap []StageEntry

func (m StageMap) set(name, color string) StageMap {
	for i := range m {
		if m[i].Name == name {
			m[i].Color = color
			return m
		}
	}
	return append(m, StageEntry{Name: name, Color: color})
}

// MarshalJSON encodes the stages as a JSON object in slice order.
func (m StageMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Color)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of strings, preserving key order.
func (m *StageMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("stages: expected object, got %v", tok)
	}

	out := StageMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("stages: expected string key, got %v", keyTok)
		}

		var color string
		if err := dec.Decode(&color); err != nil {
			return fmt.Errorf("stages: color of %q: %w", key, err)
		}
		out = out.set(key, color)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// MarshalYAML encodes the stages as a YAML mapping in slice order.
func (m StageMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Color},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping of strings, preserving key order.
func (m *StageMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return errors.New("stages: expected mapping")
	}

	out := StageMap{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key, color string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("stages: key: %w", err)
		}
		if err := value.Content[i+1].Decode(&color); err != nil {
			return fmt.Errorf("stages: color of %q: %w", key, err)
		}
		out = out.set(key, color)
	}
	*m = out
	return nil
}

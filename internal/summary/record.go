package summary

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is one video's curated summary: a display title plus ordered
// sections. Section order is the data-file declaration order and is
// preserved through markdown and JSON rendering.
type Record struct {
	Title    string
	Sections []Section
}

// Section holds either a flat list of bullets (Items) or named groups of
// bullets (Groups); exactly one of the two is populated.
type Section struct {
	Key    string
	Items  []string
	Groups []Group
}

type Group struct {
	Key   string
	Items []string
}

// UnmarshalYAML decodes the data-file shape:
//
//	title: Video 2 Summary (THRIVE-Belize)
//	sections:
//	  modules:
//	    - ...
//	  clusters:
//	    self:
//	      - ...
//
// Mapping order is kept, which is why this walks yaml.Node instead of
// decoding into a map.
func (r *Record) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("summary record: expected mapping, got %v", n.Kind)
	}
	for i := 0; i < len(n.Content)-1; i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "title":
			r.Title = val.Value
		case "sections":
			sections, err := decodeSections(val)
			if err != nil {
				return err
			}
			r.Sections = sections
		default:
			return fmt.Errorf("summary record: unknown field %q", key.Value)
		}
	}
	return nil
}

func decodeSections(n *yaml.Node) ([]Section, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("summary sections: expected mapping, got %v", n.Kind)
	}
	var sections []Section
	for i := 0; i < len(n.Content)-1; i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		s := Section{Key: key.Value}
		switch val.Kind {
		case yaml.SequenceNode:
			if err := val.Decode(&s.Items); err != nil {
				return nil, fmt.Errorf("summary section %q: %w", key.Value, err)
			}
		case yaml.MappingNode:
			for j := 0; j < len(val.Content)-1; j += 2 {
				g := Group{Key: val.Content[j].Value}
				if err := val.Content[j+1].Decode(&g.Items); err != nil {
					return nil, fmt.Errorf("summary group %q.%q: %w", key.Value, g.Key, err)
				}
				s.Groups = append(s.Groups, g)
			}
		default:
			return nil, fmt.Errorf("summary section %q: expected list or mapping", key.Value)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// MarshalJSON emits the sections as a single JSON object in declaration
// order. The title is presentation metadata and is not part of the object.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, s.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if len(s.Groups) > 0 {
			buf.WriteByte('{')
			for j, g := range s.Groups {
				if j > 0 {
					buf.WriteByte(',')
				}
				if err := writeJSONString(&buf, g.Key); err != nil {
					return nil, err
				}
				buf.WriteByte(':')
				if err := writeJSONStrings(&buf, g.Items); err != nil {
					return nil, err
				}
			}
			buf.WriteByte('}')
		} else if err := writeJSONStrings(&buf, s.Items); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONStrings(buf *bytes.Buffer, items []string) error {
	buf.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, it); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// writeJSONString encodes s without HTML escaping so non-ASCII and
// punctuation pass through unchanged.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // drop the newline Encode appends
	return nil
}

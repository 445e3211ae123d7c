package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thrive-belize/deckbuild/internal/summary"
)

// Filename is the deck data file written at the generated assets root.
const Filename = "deck_data.json"

// Deck is the manifest consumed by the slide-rendering layer: one entry per
// video key, serialized as an object in entry order.
type Deck struct {
	Videos []Entry
}

// Entry describes one video. Filename is the video reference relative to
// the deck (../<name>); empty means the locator found nothing and the field
// serializes as null. Duration is a placeholder until the deck layer probes
// real durations.
type Entry struct {
	Key      string
	Filename string
	Duration string
	Summary  summary.Record
}

func (d Deck) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"videos":{`)
	for i, e := range d.Videos {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeEntry(&buf, e); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, e Entry) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1) // drop the newline Encode appends
		return nil
	}

	if err := encode(e.Key); err != nil {
		return err
	}
	buf.WriteString(`:{"filename":`)
	if e.Filename == "" {
		buf.WriteString("null")
	} else if err := encode(e.Filename); err != nil {
		return err
	}
	buf.WriteString(`,"duration":`)
	if err := encode(e.Duration); err != nil {
		return err
	}
	buf.WriteString(`,"summary":`)
	if err := encode(e.Summary); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// Encode renders the deck with 2-space indentation and no HTML escaping.
// Output is byte-deterministic for a given deck.
func Encode(d Deck) ([]byte, error) {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), nil
}

// Write overwrites the deck file at path.
func Write(path string, d Deck) error {
	b, err := Encode(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

package draw

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes a draw as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(d *Draw, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode draw: %w", err)
	}
	return nil
}

// ReadJSON decodes a draw from r.
func ReadJSON(r io.Reader) (*Draw, error) {
	var d Draw
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode draw: %w", err)
	}
	return &d, nil
}

// ReadFile reads a draw from a JSON file.
func ReadFile(path string) (*Draw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteFile writes a draw to a JSON file.
func WriteFile(d *Draw, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// Marshal returns the canonical JSON bytes for a draw. The pipeline hashes
// these bytes to key cached layouts, so the encoding must be deterministic
// for a given draw value.
func Marshal(d *Draw) ([]byte, error) {
	return json.Marshal(d)
}

// Unmarshal decodes a draw from JSON bytes.
func Unmarshal(data []byte) (*Draw, error) {
	var d Draw
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode draw: %w", err)
	}
	return &d, nil
}

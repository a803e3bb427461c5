package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// Save encodes v with gob and writes it to filename. It is used for fit-state
// checkpoints and fitted-model snapshots.
func Save(v interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return SaveToWriter(v, file)
}

// Load decodes gob data from filename into v, which must be a pointer.
func Load(v interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(v, file)
}

// SaveToWriter encodes v with gob and writes it to w.
func SaveToWriter(v interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return nil
}

// LoadFromReader decodes gob data from r into v, which must be a pointer.
func LoadFromReader(v interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}
	return nil
}

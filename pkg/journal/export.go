package journal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Export writes an entry log to w as gzip-compressed JSON.
func Export(w io.Writer, entries []Entry) error {
	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(entries); err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to flush journal: %w", err)
	}
	return nil
}

// Import reads an entry log previously written by Export.
func Import(r io.Reader) ([]Entry, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal header: %w", err)
	}
	defer gz.Close()

	var entries []Entry
	if err := json.NewDecoder(gz).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode journal: %w", err)
	}
	return entries, nil
}

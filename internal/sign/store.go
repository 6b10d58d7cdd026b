package sign

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an on-disk inventory encoding.
type Format string

const (
	FormatJSONL  Format = "jsonl"  // One JSON object per line
	FormatSQLite Format = "sqlite" // SQLite database with a signs table
)

// FormatFor picks the store format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".json":
		return FormatJSONL, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unknown inventory format for %s (want .jsonl or .db)", path)
	}
}

// LoadFile reads an inventory from path, choosing the store by extension.
// Any failure is wrapped in ErrInventoryLoad and no partial inventory is
// returned.
func LoadFile(ctx context.Context, path string) (*Inventory, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInventoryLoad, err)
	}

	var signs []Sign
	switch format {
	case FormatSQLite:
		signs, err = LoadSQLite(ctx, path)
	default:
		signs, err = LoadJSONLFile(path)
	}
	if err != nil {
		return nil, err
	}

	inv, err := NewInventory(signs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInventoryLoad, path, err)
	}
	return inv, nil
}

// SaveFile writes signs to path, choosing the store by extension.
func SaveFile(ctx context.Context, path string, signs []Sign) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if format == FormatSQLite {
		return SaveSQLite(ctx, path, signs)
	}
	return SaveJSONLFile(path, signs)
}

// LoadJSONLFile reads signs from a JSON Lines file.
func LoadJSONLFile(path string) ([]Sign, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrInventoryLoad, path, err)
	}
	defer file.Close()

	signs, err := ReadJSONL(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return signs, nil
}

// ReadJSONL decodes one sign per non-blank line. A malformed line fails the
// whole read.
func ReadJSONL(r io.Reader) ([]Sign, error) {
	var signs []Sign

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var s Sign
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInventoryLoad, lineNum, err)
		}
		signs = append(signs, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading: %w", ErrInventoryLoad, err)
	}

	return signs, nil
}

// SaveJSONLFile writes signs to a JSON Lines file, replacing it.
func SaveJSONLFile(path string, signs []Sign) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating inventory file: %w", err)
	}

	if err := WriteJSONL(file, signs); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteJSONL encodes one sign per line.
func WriteJSONL(w io.Writer, signs []Sign) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, s := range signs {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding sign %q: %w", s.Value, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing inventory: %w", err)
	}
	return nil
}

// =============================================================================
// Sales Analytics System - Feed Reader
// =============================================================================
//
// This module reads the raw sales feed from disk. Legacy exports arrive in a
// mix of encodings, so decoding is attempted in a fixed order (UTF-8, then
// ISO-8859-1, then Windows-1252) and the first successful decode wins. The
// header line is discarded and blank lines are dropped; everything else is
// handed to the parser untouched.
//
// =============================================================================

package feed

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// fallbackCharmaps are tried, in order, when the file is not valid UTF-8.
var fallbackCharmaps = []*charmap.Charmap{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ErrUndecodable is returned when no supported encoding can decode the file.
var ErrUndecodable = errors.New("unable to decode file with supported encodings")

// ReadSalesData reads the feed at path and returns its raw data lines.
//
// The first line is treated as the column header and discarded; empty lines
// are skipped. A missing file is reported as an error wrapping os.ErrNotExist
// so the caller can treat it as a distinct, non-fatal condition.
func ReadSalesData(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales feed %s: %w", path, err)
	}

	text, _, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("sales feed %s: %w", path, err)
	}

	rawLines := strings.Split(text, "\n")

	var lines []string
	for i, line := range rawLines {
		if i == 0 {
			// Header row.
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// decode converts raw file bytes to a string, trying UTF-8 first and then
// the fallback charmaps. It returns the decoded text and the encoding used.
func decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	for _, cm := range fallbackCharmaps {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), cm.String(), nil
	}

	return "", "", ErrUndecodable
}

package params

import (
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const (
	// fileMarker is searched anywhere in the params source, so
	// "notes.txt.bak" is a file path too.
	fileMarker = ".txt"

	listSeparator = ","
	lineSeparator = "\n"
)

// IsFile reports whether the params source must be read as a file.
func IsFile(source string) bool {
	return strings.Contains(source, fileMarker)
}

// Load returns the list of param names. The source is either a comma
// separated list or a path to a file with a param name on each line.
// The count limits the number of lines read from a file, count <= 0
// means all lines.
func Load(source string, count int) ([]string, error) {
	if source == "" {
		return []string{}, nil
	}

	if IsFile(source) {
		return LoadFile(source, count)
	}

	return strings.Split(source, listSeparator), nil
}

// LoadFile reads param names from the file line by line. Names are not
// trimmed, an empty line is an empty name.
func LoadFile(path string, count int) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{path: path, err: err}
	}

	// invalid UTF-8 sequences are replaced with U+FFFD
	content, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &FileReadError{path: path, err: err}
	}

	lines := strings.Split(string(content), lineSeparator)
	if count > 0 && count < len(lines) {
		lines = lines[:count]
	}

	return lines, nil
}

// Package city - persistence of city sets.
//
// Two formats are supported:
//
//	text: one record per line, "City <label>: (<x>, <y>)", labels 1-based.
//	      Blank lines are skipped. Records written by older tools with the
//	      "Cidade" prefix are accepted as well.
//	json: {"cities":[{"x":1,"y":2}, ...]}
//
// Every reader funnels its result through NewList, so a loaded set satisfies
// the same invariants as one built in code.
package city

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// recordPattern matches a single text record; groups are label, x, y.
var recordPattern = regexp.MustCompile(`^(?:City|Cidade)\s+(\d+)\s*:\s*\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)$`)

// Write emits one "City <i+1>: (<x>, <y>)" line per city in index order.
func Write(w io.Writer, l *List) error {
	if l == nil {
		return ErrInvalidInput
	}
	bw := bufio.NewWriter(w)

	var (
		i int
		c City
	)
	for i, c = range l.cities {
		if _, err := fmt.Fprintf(bw, "City %d: (%d, %d)\n", i+1, c.X, c.Y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read parses the text format produced by Write. Labels are informational;
// the order of the lines defines the city indices.
//
// Errors: ErrMalformedLine (with the 1-based line number) for any non-blank
// line that is not a record, plus everything NewList may return.
func Read(r io.Reader) (*List, error) {
	var (
		sc     = bufio.NewScanner(r)
		cities []City
		lineNo int
		line   string
		m      []string
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m = recordPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		x, errX := strconv.Atoi(m[2])
		y, errY := strconv.Atoi(m[3])
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: coordinate overflow", ErrMalformedLine, lineNo)
		}
		cities = append(cities, City{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("city: read: %w", err)
	}

	return NewList(cities...)
}

// document is the on-disk JSON shape.
type document struct {
	Cities []City `json:"cities" mapstructure:"cities"`
}

// ReadJSON decodes {"cities":[{"x":..,"y":..}]} into a List. Numbers must be
// integral; fractional coordinates are rejected with ErrInvalidInput.
func ReadJSON(r io.Reader) (*List, error) {
	var raw map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("city: decode json: %w", err)
	}

	var doc document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return NewList(doc.Cities...)
}

// WriteJSON encodes l in the JSON format accepted by ReadJSON.
func WriteJSON(w io.Writer, l *List) error {
	if l == nil {
		return ErrInvalidInput
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(document{Cities: l.Cities()})
}

// Load reads a city set from path. Files ending in ".json" use the JSON
// format; anything else is parsed as text.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isJSON(path) {
		return ReadJSON(f)
	}

	return Read(f)
}

// Save writes l to path, choosing the format the same way Load does.
func Save(path string, l *List) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if isJSON(path) {
		return WriteJSON(f, l)
	}

	return Write(f, l)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

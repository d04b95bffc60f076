package ease

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Ease is a named cubic-bezier timing function.
//
// Points normally holds the four control point coordinates. The count is not
// checked; whatever the source table holds is carried into every artifact.
type Ease struct {
	Name   string
	Points []json.Number
}

// Values returns the points in their JSON textual form.
func (e Ease) Values() []string {
	values := make([]string, 0, len(e.Points))
	for _, p := range e.Points {
		values = append(values, p.String())
	}
	return values
}

// Table is the ordered set of eases loaded from eases.json. The order of the
// source object is the order of every generated artifact.
type Table []Ease

func (table Table) Names() []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		names = append(names, e.Name)
	}
	return names
}

// ParseTable decodes a JSON object mapping ease names to arrays of numbers.
// A name repeated in the object keeps its first position and takes its last value.
func ParseTable(buf []byte) (Table, error) {
	if !gjson.ValidBytes(buf) {
		return nil, errors.New("eases are not valid JSON")
	}
	doc := gjson.ParseBytes(buf)
	if !doc.IsObject() {
		return nil, errors.New("expected eases to be a JSON object of names to control points")
	}

	var (
		table = Table{}
		index = make(map[string]int)
		err   error
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		var points []json.Number
		points, err = parsePoints(name, value)
		if err != nil {
			return false
		}

		if i, found := index[name]; found {
			table[i].Points = points
			return true
		}
		index[name] = len(table)
		table = append(table, Ease{Name: name, Points: points})
		return true
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

func parsePoints(name string, value gjson.Result) ([]json.Number, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("ease %q: expected an array of control points", name)
	}
	points := []json.Number{}
	for i, p := range value.Array() {
		if p.Type != gjson.Number {
			return nil, fmt.Errorf("ease %q: control point %d is not a number", name, i)
		}
		points = append(points, json.Number(p.Raw))
	}
	return points, nil
}

func (table *Table) UnmarshalJSON(buf []byte) error {
	parsed, err := ParseTable(buf)
	if err != nil {
		return err
	}
	*table = parsed
	return nil
}

// MarshalJSON encodes the table as a compact JSON object in table order.
// Strings are not HTML escaped.
func (table Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range table {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(marshalString(e.Name))
		buf.WriteByte(':')

		points := e.Points
		if points == nil {
			points = []json.Number{}
		}
		pointsJSON, err := json.Marshal(points)
		if err != nil {
			return nil, fmt.Errorf("ease %q: %w", e.Name, err)
		}
		buf.Write(pointsJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent encodes the table with a two space indent and one array
// element per line. The result has no trailing newline.
func (table Table) MarshalIndent() ([]byte, error) {
	compact, err := table.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err // un-tested
	}
	return buf.Bytes(), nil
}

// marshalString quotes s the way JSON.stringify does: only the quote, the
// backslash and control characters are escaped. U+2028 and U+2029 stay raw.
func marshalString(s string) []byte {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			buf = append(buf, '\\', byte(r))
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if r < 0x20 {
				buf = fmt.Appendf(buf, `\u%04x`, r)
				continue
			}
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}

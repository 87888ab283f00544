package plib

import (
	"encoding/json"
	"errors"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// ToJSON returns the canonical encoding {"x": <x>, "y": <y>}. The layout is
// fixed: key order x then y, one space after each colon and comma.
func (p Point) ToJSON() string {
	return string(p.appendJSON(make([]byte, 0, 48)))
}

func (p Point) appendJSON(b []byte) []byte {
	b = append(b, `{"x": `...)
	b = strconv.AppendInt(b, int64(p.x), 10)
	b = append(b, `, "y": `...)
	b = strconv.AppendInt(b, int64(p.y), 10)
	return append(b, '}')
}

// MarshalJSON implements json.Marshaler. Note encoding/json compacts the
// result when it is embedded in a larger document.
func (p Point) MarshalJSON() ([]byte, error) {
	return p.appendJSON(nil), nil
}

// FromJSON decodes a Point from a JSON object with integer fields x and y.
// Key order does not matter and unknown keys are ignored.
func FromJSON(text string) (Point, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return Point{}, malformed(text, "", err)
	}

	x, err := coordinateField(fields, "x")
	if err != nil {
		return Point{}, malformed(text, "x", err)
	}
	y, err := coordinateField(fields, "y")
	if err != nil {
		return Point{}, malformed(text, "y", err)
	}
	return Point{x: x, y: y}, nil
}

// UnmarshalJSON implements json.Unmarshaler using FromJSON. The receiver is
// left untouched on error and for a JSON null.
func (p *Point) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	pt, err := FromJSON(string(data))
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

func coordinateField(fields map[string]json.RawMessage, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, errors.New("missing field")
	}
	// only plain integer literals; 1.0 and 1e3 are rejected like any float
	n, err := strconv.ParseInt(string(raw), 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func malformed(text string, field string, err error) error {
	log.Debugf("rejecting point json %q: %v", text, err)
	return &Error{Kind: MalformedDataKind, Op: "from_json", Arg: field, Err: err}
}

package lalr1

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque symbol identifier, as used by parsing tables for terminal,
// nonterminal and semantic-rule IDs. The caller's alphabet may use plain
// integers or single-character strings (e.g. for literal operator terminals
// such as "+"); ID represents either, and is comparable so it can be used
// directly as a map key.
type ID struct {
	str    string
	num    int64
	isText bool
}

// IntID builds an integer-valued ID.
func IntID(n int64) ID {
	return ID{num: n}
}

// TextID builds a string-valued ID, typically a single-character literal
// terminal such as "+" or "(".
func TextID(s string) ID {
	return ID{str: s, isText: true}
}

// IsText reports whether the ID was built from a string, as opposed to an
// integer.
func (id ID) IsText() bool {
	return id.isText
}

// Int returns the integer value of the ID (zero if it was built from a
// string).
func (id ID) Int() int64 {
	return id.num
}

// Text returns the string value of the ID (empty if it was built from an
// integer).
func (id ID) Text() string {
	return id.str
}

func (id ID) String() string {
	if id.isText {
		return strconv.Quote(id.str)
	}
	return strconv.FormatInt(id.num, 10)
}

// UnmarshalJSON accepts either a JSON number or a JSON string, matching the
// table artifact's `id` fields (see lr.Tables).
func (id *ID) UnmarshalJSON(data []byte) error {
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*id = ID{num: num}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*id = ID{str: str, isText: true}
		return nil
	}
	return fmt.Errorf("lalr1: ID must be a JSON number or string, got %s", data)
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isText {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}

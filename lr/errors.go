package lr

import (
	"fmt"

	"github.com/go-lalr1/lalr1"
)

// MissingSymbolError is returned when an IndexTable lookup is given an ID or
// index it does not know about. This always indicates a mismatch between
// the caller's symbol alphabet and the table artifact in use — there is no
// fallback behavior.
type MissingSymbolError struct {
	ID      lalr1.ID
	Index   int
	byIndex bool
}

func (e *MissingSymbolError) Error() string {
	if e.byIndex {
		return fmt.Sprintf("lr: no symbol registered at table index %d", e.Index)
	}
	return fmt.Sprintf("lr: symbol ID %s not found in table", e.ID)
}

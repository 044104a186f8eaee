package report

import (
	"fmt"
	"io"
)

// LedgerView is the read side of the ledger the report needs.
type LedgerView interface {
	Users() []string
	PaidTotal(user string) int64
	Outstanding(user string) int64
}

// Write emits the paid section followed by the owes section, one line per
// user in first-seen order, all amounts in cents. The line formats, doubled
// space before the paid colon included, are part of the output contract.
func Write(w io.Writer, ledger LedgerView) error {
	users := ledger.Users()

	for _, user := range users {
		if _, err := fmt.Fprintf(w, "%s has paid  : %d\n", user, ledger.PaidTotal(user)); err != nil {
			return fmt.Errorf("can't write paid line: %w", err)
		}
	}
	for _, user := range users {
		if _, err := fmt.Fprintf(w, "%s owes : %d\n", user, ledger.Outstanding(user)); err != nil {
			return fmt.Errorf("can't write owes line: %w", err)
		}
	}

	return nil
}

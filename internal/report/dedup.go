package report

import (
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

// seenSet tracks which creditor+account-number identities have already
// been extracted. It is threaded explicitly through the strategies rather
// than captured in a closure, so each strategy stays independently
// testable.
type seenSet map[string]struct{}

// claim records an identity and reports whether it was new. The first
// strategy to claim an identity wins; later strategies must not re-add.
func (s seenSet) claim(creditor, accountNumber string) bool {
	key := normalize.DedupKey(creditor, accountNumber)
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Package refcode derives the human-readable sequential codes used for
// booking codes and invoice numbers: {PREFIX}{DDMMYY}-{NNN}, where the
// sequence is scoped to the day prefix and zero-padded to three digits.
// Codes are computed, never sequence-generated, so callers must derive them
// inside the same transaction that persists the new record.
package refcode

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DailyPrefix returns e.g. "G051123-" for a group booking on 5 Nov 2023.
func DailyPrefix(prefix string, date time.Time) string {
	return prefix + date.Format("020106") + "-"
}

// Next derives the next code under dailyPrefix given the highest existing
// code for that prefix (empty string when none exists yet).
func Next(dailyPrefix, last string) string {
	seq := 1
	if last != "" && strings.HasPrefix(last, dailyPrefix) {
		if n, err := strconv.Atoi(last[len(dailyPrefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", dailyPrefix, seq)
}

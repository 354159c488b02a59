//go:build unit

package refcode_test

import (
	"testing"
	"time"

	"stayops/internal/domain/refcode"

	"github.com/stretchr/testify/assert"
)

func TestDailyPrefix(t *testing.T) {
	date := time.Date(2023, 11, 5, 16, 45, 0, 0, time.UTC)

	assert.Equal(t, "G051123-", refcode.DailyPrefix("G", date))
	assert.Equal(t, "P051123-", refcode.DailyPrefix("P", date))
	assert.Equal(t, "INV051123-", refcode.DailyPrefix("INV", date))
}

func TestNext(t *testing.T) {
	t.Run("first code of the day", func(t *testing.T) {
		assert.Equal(t, "G051123-001", refcode.Next("G051123-", ""))
	})

	t.Run("increments the daily sequence", func(t *testing.T) {
		assert.Equal(t, "G051123-002", refcode.Next("G051123-", "G051123-001"))
		assert.Equal(t, "G051123-100", refcode.Next("G051123-", "G051123-099"))
	})

	t.Run("a stale previous-day code restarts the sequence", func(t *testing.T) {
		assert.Equal(t, "G061123-001", refcode.Next("G061123-", "G051123-042"))
	})

	t.Run("sequence is not capped at three digits", func(t *testing.T) {
		assert.Equal(t, "G051123-1000", refcode.Next("G051123-", "G051123-999"))
	})
}

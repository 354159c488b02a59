//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"stayops/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func baseInput(now time.Time) pricing.Input {
	return pricing.Input{
		BaseRate:       500_000,
		Now:            now,
		Arrival:        now.AddDate(0, 0, 8),
		Departure:      now.AddDate(0, 0, 10),
		AvailableRooms: 10,
		TotalRooms:     10,
		RequestedRooms: 1,
	}
}

func TestCompute(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("no adjustments beyond the early-bird horizon", func(t *testing.T) {
		q := pricing.Compute(baseInput(now))
		assert.Equal(t, int64(500_000), q.Nightly)
		assert.Equal(t, int64(500_000), q.Reference)
	})

	t.Run("booking one day out gets six days of decay", func(t *testing.T) {
		in := baseInput(now)
		in.Arrival = now.AddDate(0, 0, 1)
		in.Departure = now.AddDate(0, 0, 3)

		q := pricing.Compute(in)
		assert.Equal(t, int64(440_000), q.Nightly)
		assert.Equal(t, int64(500_000), q.Reference)
	})

	t.Run("closer arrival never costs more", func(t *testing.T) {
		prev := int64(1 << 62)
		for days := 9; days >= 1; days-- {
			in := baseInput(now)
			in.Arrival = now.AddDate(0, 0, days)
			in.Departure = in.Arrival.AddDate(0, 0, 2)

			q := pricing.Compute(in)
			assert.LessOrEqual(t, q.Nightly, prev, "days=%d", days)
			prev = q.Nightly
		}
	})

	t.Run("scarcity premium below half capacity", func(t *testing.T) {
		in := baseInput(now)
		in.AvailableRooms = 3 // threshold is 5, two units under

		q := pricing.Compute(in)
		assert.Equal(t, int64(535_000), q.Nightly)
		assert.Equal(t, int64(535_000), q.Reference)
	})

	t.Run("no premium exactly at half capacity", func(t *testing.T) {
		in := baseInput(now)
		in.AvailableRooms = 5

		q := pricing.Compute(in)
		assert.Equal(t, int64(500_000), q.Nightly)
		assert.Equal(t, int64(500_000), q.Reference)
	})

	t.Run("extended-stay discount beyond the third night", func(t *testing.T) {
		in := baseInput(now)
		in.Departure = in.Arrival.AddDate(0, 0, 5) // two discounted nights

		q := pricing.Compute(in)
		assert.Equal(t, int64(480_000), q.Nightly)
		assert.Equal(t, int64(500_000), q.Reference)
	})

	t.Run("bulk discount beyond the third room", func(t *testing.T) {
		in := baseInput(now)
		in.RequestedRooms = 5 // two discounted rooms

		q := pricing.Compute(in)
		assert.Equal(t, int64(485_000), q.Nightly)
	})

	t.Run("adjustments compose against the base rate", func(t *testing.T) {
		in := baseInput(now)
		in.Arrival = now.AddDate(0, 0, 1)
		in.Departure = in.Arrival.AddDate(0, 0, 5)
		in.AvailableRooms = 3
		in.RequestedRooms = 5

		// -12% early bird, +7% scarcity, -4% extended stay, -3% bulk
		q := pricing.Compute(in)
		assert.Equal(t, int64(440_000), q.Nightly)
		assert.Equal(t, int64(535_000), q.Reference)
	})

	t.Run("extended-stay and bulk discounts are capped", func(t *testing.T) {
		in := baseInput(now)
		in.Departure = in.Arrival.AddDate(0, 0, 30)
		in.RequestedRooms = 20

		// 10 nights at 2% and 10 rooms at 1.5%, no further growth
		q := pricing.Compute(in)
		assert.Equal(t, int64(325_000), q.Nightly)
	})
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, pricing.WithinTolerance(500_000, 500_000, 0.05))
	assert.True(t, pricing.WithinTolerance(524_999, 500_000, 0.05))
	assert.True(t, pricing.WithinTolerance(475_000, 500_000, 0.05))
	assert.False(t, pricing.WithinTolerance(526_000, 500_000, 0.05))
	assert.False(t, pricing.WithinTolerance(470_000, 500_000, 0.05))
	assert.True(t, pricing.WithinTolerance(0, 0, 0.05))
	assert.False(t, pricing.WithinTolerance(100, 0, 0.05))
}

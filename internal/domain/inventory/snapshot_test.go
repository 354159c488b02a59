//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"stayops/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild(t *testing.T) {
	t.Run("no stays leaves everything available", func(t *testing.T) {
		snap, err := inventory.Build(10, nil, day(10), day(13), 0)
		require.NoError(t, err)

		assert.Equal(t, 10, snap.TotalRooms)
		assert.Equal(t, 10, snap.AvailableRooms)
		assert.Equal(t, []int{0, 0, 0}, snap.OccupiedPerNight)
	})

	t.Run("availability is bounded by the busiest night", func(t *testing.T) {
		stays := []inventory.Stay{
			{Arrival: day(10), Departure: day(12), Rooms: 3},
			{Arrival: day(11), Departure: day(14), Rooms: 4},
		}

		snap, err := inventory.Build(10, stays, day(10), day(13), 0)
		require.NoError(t, err)

		assert.Equal(t, []int{3, 7, 4}, snap.OccupiedPerNight)
		assert.Equal(t, 3, snap.AvailableRooms)
	})

	t.Run("checkout day does not occupy the night", func(t *testing.T) {
		stays := []inventory.Stay{
			{Arrival: day(8), Departure: day(10), Rooms: 5},
		}

		snap, err := inventory.Build(10, stays, day(10), day(12), 0)
		require.NoError(t, err)

		assert.Equal(t, []int{0, 0}, snap.OccupiedPerNight)
		assert.Equal(t, 10, snap.AvailableRooms)
	})

	t.Run("stay straddling the queried range counts every night", func(t *testing.T) {
		stays := []inventory.Stay{
			{Arrival: day(5), Departure: day(20), Rooms: 2},
		}

		snap, err := inventory.Build(10, stays, day(10), day(13), 0)
		require.NoError(t, err)

		assert.Equal(t, []int{2, 2, 2}, snap.OccupiedPerNight)
		assert.Equal(t, 8, snap.AvailableRooms)
	})

	t.Run("availability can go negative when overbooked", func(t *testing.T) {
		stays := []inventory.Stay{
			{Arrival: day(10), Departure: day(11), Rooms: 12},
		}

		snap, err := inventory.Build(10, stays, day(10), day(11), 0)
		require.NoError(t, err)

		assert.Equal(t, -2, snap.AvailableRooms)
	})

	t.Run("rejects an empty or inverted range", func(t *testing.T) {
		_, err := inventory.Build(10, nil, day(10), day(10), 0)
		assert.ErrorIs(t, err, inventory.ErrInvalidRange)

		_, err = inventory.Build(10, nil, day(12), day(10), 0)
		assert.ErrorIs(t, err, inventory.ErrInvalidRange)
	})

	t.Run("enforces the channel night cap when set", func(t *testing.T) {
		_, err := inventory.Build(10, nil, day(1), day(10), 7)
		assert.ErrorIs(t, err, inventory.ErrTooManyNights)

		_, err = inventory.Build(10, nil, day(1), day(8), 7)
		assert.NoError(t, err)
	})
}

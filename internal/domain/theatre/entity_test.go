//go:build unit

package theatre_test

import (
	"testing"
	"time"

	"hospital-ops/internal/domain/theatre"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func window(t *testing.T, sh, sm, eh, em int) theatre.TimeWindow {
	t.Helper()
	w, err := theatre.NewTimeWindow(at(sh, sm), at(eh, em))
	require.NoError(t, err)
	return w
}

func newTheatre(t *testing.T) *theatre.Theatre {
	t.Helper()
	th, err := theatre.NewTheatre("OT-1", nil, base)
	require.NoError(t, err)
	return th
}

func TestNewTheatre(t *testing.T) {
	t.Run("starts available with an empty schedule", func(t *testing.T) {
		th := newTheatre(t)

		assert.NotEqual(t, uuid.Nil, th.ID())
		assert.Equal(t, theatre.StatusAvailable, th.Status())
		assert.Empty(t, th.Schedule())
		assert.Nil(t, th.CurrentSurgeryID())
		assert.Equal(t, int32(1), th.Version())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := theatre.NewTheatre("   ", nil, base)
		require.ErrorIs(t, err, theatre.ErrInvalidName)
	})
}

func TestTimeWindow(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := theatre.NewTimeWindow(at(11, 0), at(10, 0))
		require.ErrorIs(t, err, theatre.ErrInvalidTimeWindow)

		_, err = theatre.NewTimeWindow(at(10, 0), at(10, 0))
		require.ErrorIs(t, err, theatre.ErrInvalidTimeWindow)
	})

	cases := []struct {
		name  string
		a, b  theatre.TimeWindow
		wants bool
	}{
		{
			name:  "partial overlap",
			a:     window(t, 10, 0, 11, 0),
			b:     window(t, 10, 30, 11, 30),
			wants: true,
		},
		{
			name:  "touching edges are free",
			a:     window(t, 9, 0, 10, 0),
			b:     window(t, 10, 0, 11, 0),
			wants: false,
		},
		{
			name:  "containment",
			a:     window(t, 9, 0, 12, 0),
			b:     window(t, 10, 0, 11, 0),
			wants: true,
		},
		{
			name:  "disjoint",
			a:     window(t, 8, 0, 9, 0),
			b:     window(t, 13, 0, 14, 0),
			wants: false,
		},
		{
			name:  "open window blocks everything after its start",
			a:     theatre.OpenWindow(at(10, 0)),
			b:     window(t, 18, 0, 19, 0),
			wants: true,
		},
		{
			name:  "open window leaves earlier slots free",
			a:     theatre.OpenWindow(at(10, 0)),
			b:     window(t, 8, 0, 10, 0),
			wants: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wants, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.wants, tc.b.Overlaps(tc.a))
		})
	}
}

func TestFindConflict(t *testing.T) {
	end := at(11, 0)
	entries := []theatre.ScheduleEntry{
		theatre.ReconstructScheduleEntry(uuid.New(), uuid.New(), at(8, 0), &end, theatre.EntryCompleted),
		theatre.ReconstructScheduleEntry(uuid.New(), uuid.New(), at(10, 0), &end, theatre.EntryScheduled),
	}

	t.Run("returns the blocking entry", func(t *testing.T) {
		got, found := theatre.FindConflict(entries, window(t, 10, 30, 11, 30))
		require.True(t, found)
		assert.Equal(t, entries[1].ID(), got.ID())
	})

	t.Run("terminal entries never block", func(t *testing.T) {
		assert.False(t, theatre.HasConflict(entries, window(t, 8, 0, 9, 0)))
	})
}

func TestTheatre_ScheduleSurgery(t *testing.T) {
	t.Run("appends exactly one scheduled entry", func(t *testing.T) {
		th := newTheatre(t)
		surgeryID := uuid.New()

		entry, err := th.ScheduleSurgery(surgeryID, window(t, 10, 0, 11, 0), at(7, 0))
		require.NoError(t, err)

		schedule := th.Schedule()
		require.Len(t, schedule, 1)
		assert.Equal(t, entry.ID(), schedule[0].ID())
		assert.Equal(t, surgeryID, schedule[0].SurgeryID())
		assert.Equal(t, theatre.EntryScheduled, schedule[0].Status())
		assert.Equal(t, at(7, 0), th.UpdatedAt())
	})

	t.Run("adjacent slot is accepted", func(t *testing.T) {
		th := newTheatre(t)
		_, err := th.ScheduleSurgery(uuid.New(), window(t, 9, 0, 10, 0), base)
		require.NoError(t, err)

		_, err = th.ScheduleSurgery(uuid.New(), window(t, 10, 0, 11, 0), base)
		require.NoError(t, err)
		assert.Len(t, th.Schedule(), 2)
	})

	t.Run("conflict leaves the schedule unchanged", func(t *testing.T) {
		th := newTheatre(t)
		first, err := th.ScheduleSurgery(uuid.New(), window(t, 10, 0, 11, 0), base)
		require.NoError(t, err)
		before := th.UpdatedAt()

		_, err = th.ScheduleSurgery(uuid.New(), window(t, 10, 30, 11, 30), at(9, 0))
		require.ErrorIs(t, err, theatre.ErrTimeSlotConflict)

		schedule := th.Schedule()
		require.Len(t, schedule, 1)
		assert.Equal(t, first.ID(), schedule[0].ID())
		assert.Equal(t, before, th.UpdatedAt())
	})

	t.Run("cancelled entry frees its slot", func(t *testing.T) {
		th := newTheatre(t)
		first, err := th.ScheduleSurgery(uuid.New(), window(t, 10, 0, 11, 0), base)
		require.NoError(t, err)
		_, err = th.ChangeEntryStatus(first.ID(), theatre.EntryCancelled, base)
		require.NoError(t, err)

		_, err = th.ScheduleSurgery(uuid.New(), window(t, 10, 0, 11, 0), base)
		require.NoError(t, err)
		assert.Len(t, th.ActiveSchedule(), 1)
	})

	t.Run("open window is rejected", func(t *testing.T) {
		th := newTheatre(t)
		_, err := th.ScheduleSurgery(uuid.New(), theatre.OpenWindow(at(10, 0)), base)
		require.ErrorIs(t, err, theatre.ErrInvalidTimeWindow)
	})
}

func TestTheatre_DeclareEmergency(t *testing.T) {
	th := newTheatre(t)
	done, err := th.ScheduleSurgery(uuid.New(), window(t, 6, 0, 7, 0), base)
	require.NoError(t, err)
	_, err = th.ChangeEntryStatus(done.ID(), theatre.EntryInProgress, base)
	require.NoError(t, err)
	_, err = th.ChangeEntryStatus(done.ID(), theatre.EntryCompleted, base)
	require.NoError(t, err)
	_, err = th.ScheduleSurgery(uuid.New(), window(t, 10, 0, 11, 0), base)
	require.NoError(t, err)
	_, err = th.ScheduleSurgery(uuid.New(), window(t, 12, 0, 13, 0), base)
	require.NoError(t, err)

	emergencyID := uuid.New()
	now := at(9, 15)
	p := th.DeclareEmergency(emergencyID, now)

	assert.Equal(t, theatre.StatusAvailable, p.PreviousStatus)
	assert.Len(t, p.Discarded, 2)

	schedule := th.Schedule()
	require.Len(t, schedule, 2)
	assert.Equal(t, done.ID(), schedule[0].ID())

	last := schedule[len(schedule)-1]
	assert.Equal(t, emergencyID, last.SurgeryID())
	assert.Equal(t, theatre.EntryInProgress, last.Status())
	assert.Equal(t, now, last.StartTime())
	assert.Nil(t, last.EndTime())
	assert.Equal(t, p.Entry.ID(), last.ID())

	assert.Equal(t, theatre.StatusEmergency, th.Status())
	require.NotNil(t, th.CurrentSurgeryID())
	assert.Equal(t, emergencyID, *th.CurrentSurgeryID())

	t.Run("open emergency entry blocks later bookings", func(t *testing.T) {
		_, err := th.ScheduleSurgery(uuid.New(), window(t, 14, 0, 15, 0), now)
		require.ErrorIs(t, err, theatre.ErrTimeSlotConflict)
	})

	t.Run("allowed from maintenance", func(t *testing.T) {
		other := newTheatre(t)
		require.NoError(t, other.ChangeStatus(theatre.StatusMaintenance, nil, base))

		p := other.DeclareEmergency(uuid.New(), now)
		assert.Equal(t, theatre.StatusMaintenance, p.PreviousStatus)
		assert.Equal(t, theatre.StatusEmergency, other.Status())
	})
}

func TestTheatre_ChangeStatus(t *testing.T) {
	cases := []struct {
		name  string
		from  theatre.Status
		to    theatre.Status
		errIs error
	}{
		{name: "available to occupied", from: theatre.StatusAvailable, to: theatre.StatusOccupied},
		{name: "occupied to maintenance", from: theatre.StatusOccupied, to: theatre.StatusMaintenance},
		{name: "emergency to available", from: theatre.StatusEmergency, to: theatre.StatusAvailable},
		{name: "same status is a no-op", from: theatre.StatusOccupied, to: theatre.StatusOccupied},
		{name: "maintenance to occupied", from: theatre.StatusMaintenance, to: theatre.StatusOccupied, errIs: theatre.ErrInvalidTransition},
		{name: "unknown status", from: theatre.StatusAvailable, to: theatre.Status("closed"), errIs: theatre.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := theatre.ReconstructTheatre(uuid.New(), "OT-2", tc.from, nil, nil, nil, 1, base, base)

			err := th.ChangeStatus(tc.to, nil, at(8, 0))
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, th.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, th.Status())
		})
	}

	t.Run("available clears the current surgery", func(t *testing.T) {
		current := uuid.New()
		th := theatre.ReconstructTheatre(uuid.New(), "OT-3", theatre.StatusOccupied, &current, nil, nil, 1, base, base)

		require.NoError(t, th.ChangeStatus(theatre.StatusAvailable, nil, base))
		assert.Nil(t, th.CurrentSurgeryID())
	})
}

func TestTheatre_ChangeEntryStatus(t *testing.T) {
	t.Run("completing an open entry closes its window", func(t *testing.T) {
		th := newTheatre(t)
		p := th.DeclareEmergency(uuid.New(), at(9, 0))

		entry, err := th.ChangeEntryStatus(p.Entry.ID(), theatre.EntryCompleted, at(10, 30))
		require.NoError(t, err)
		require.NotNil(t, entry.EndTime())
		assert.Equal(t, at(10, 30), *entry.EndTime())
		assert.Nil(t, th.CurrentSurgeryID())
		assert.Empty(t, th.ActiveSchedule())
	})

	t.Run("terminal entries cannot move", func(t *testing.T) {
		th := newTheatre(t)
		e, err := th.ScheduleSurgery(uuid.New(), window(t, 10, 0, 11, 0), base)
		require.NoError(t, err)
		_, err = th.ChangeEntryStatus(e.ID(), theatre.EntryCancelled, base)
		require.NoError(t, err)

		_, err = th.ChangeEntryStatus(e.ID(), theatre.EntryInProgress, base)
		require.ErrorIs(t, err, theatre.ErrInvalidEntryChange)
	})

	t.Run("unknown entry", func(t *testing.T) {
		th := newTheatre(t)
		_, err := th.ChangeEntryStatus(uuid.New(), theatre.EntryCompleted, base)
		require.ErrorIs(t, err, theatre.ErrEntryNotFound)
	})
}

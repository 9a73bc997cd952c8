//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"hospital-ops/internal/domain/ticket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		day   time.Time
		seq   int64
		want  string
		errIs error
	}{
		{name: "first ticket of the day", day: day, seq: 1, want: "240320-001"},
		{name: "second ticket of the day", day: day, seq: 2, want: "240320-002"},
		{name: "next day restarts", day: day.AddDate(0, 0, 1), seq: 1, want: "240321-001"},
		{name: "sequence past 999 widens", day: day, seq: 1000, want: "240320-1000"},
		{name: "zero sequence", day: day, seq: 0, errIs: ticket.ErrInvalidSequence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ticket.NewNumber(tc.day, tc.seq)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.String())
			assert.Equal(t, tc.want[:6], n.Day())
		})
	}
}

func TestParseNumber(t *testing.T) {
	for _, s := range []string{"240320-001", "240320-1000"} {
		n, err := ticket.ParseNumber(s)
		require.NoError(t, err)
		assert.Equal(t, s, n.String())
	}

	for _, s := range []string{"", "24032-001", "240320-01", "240320_001", "abcdef-001"} {
		_, err := ticket.ParseNumber(s)
		assert.ErrorIs(t, err, ticket.ErrInvalidNumber, s)
	}
}

func TestDraft(t *testing.T) {
	t.Run("priority defaults to normal", func(t *testing.T) {
		d, err := ticket.NewDraft(" Jane Doe ", "Cardiology", "")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", d.PatientName)
		assert.Equal(t, ticket.PriorityNormal, d.Priority)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := ticket.NewDraft("", "Cardiology", ticket.PriorityNormal)
		require.ErrorIs(t, err, ticket.ErrInvalidPatientName)

		_, err = ticket.NewDraft("Jane", " ", ticket.PriorityNormal)
		require.ErrorIs(t, err, ticket.ErrInvalidDepartment)

		_, err = ticket.NewDraft("Jane", "Cardiology", ticket.Priority("vip"))
		require.ErrorIs(t, err, ticket.ErrInvalidPriority)
	})

	t.Run("issued tickets start waiting", func(t *testing.T) {
		now := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
		d, err := ticket.NewDraft("Jane", "Cardiology", ticket.PriorityUrgent)
		require.NoError(t, err)
		n, err := ticket.NewNumber(now, 7)
		require.NoError(t, err)

		tk := d.Issue(n, now)
		assert.Equal(t, "240320-007", tk.Number().String())
		assert.Equal(t, ticket.StatusWaiting, tk.Status())
		assert.Equal(t, ticket.PriorityUrgent, tk.Priority())
		assert.Equal(t, now, tk.CreatedAt())
	})
}

func TestTicket_ChangeStatus(t *testing.T) {
	cases := []struct {
		name  string
		path  []ticket.Status
		errIs error
	}{
		{name: "waiting to in-progress to completed", path: []ticket.Status{ticket.StatusInProgress, ticket.StatusCompleted}},
		{name: "waiting straight to completed", path: []ticket.Status{ticket.StatusCompleted}},
		{name: "no way back to waiting", path: []ticket.Status{ticket.StatusInProgress, ticket.StatusWaiting}, errIs: ticket.ErrInvalidTransition},
		{name: "completed is final", path: []ticket.Status{ticket.StatusCompleted, ticket.StatusInProgress}, errIs: ticket.ErrInvalidTransition},
		{name: "unknown status", path: []ticket.Status{"called"}, errIs: ticket.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now()
			d, err := ticket.NewDraft("Jane", "Cardiology", ticket.PriorityNormal)
			require.NoError(t, err)
			n, err := ticket.NewNumber(now, 1)
			require.NoError(t, err)
			tk := d.Issue(n, now)

			var last error
			for _, next := range tc.path {
				before := tk.Status()
				if last = tk.ChangeStatus(next, now); last != nil {
					assert.Equal(t, before, tk.Status())
					break
				}
			}
			if tc.errIs != nil {
				require.ErrorIs(t, last, tc.errIs)
				return
			}
			require.NoError(t, last)
			assert.Equal(t, tc.path[len(tc.path)-1], tk.Status())
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, ticket.PriorityEmergency.Rank(), ticket.PriorityUrgent.Rank())
	assert.Greater(t, ticket.PriorityUrgent.Rank(), ticket.PriorityNormal.Rank())

	p, err := ticket.NewPriority("")
	require.NoError(t, err)
	assert.Equal(t, ticket.PriorityNormal, p)
}

//go:build unit

package display_test

import (
	"encoding/json"
	"testing"
	"time"

	"hospital-ops/internal/domain/display"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

func newBoard(t *testing.T) *display.Board {
	t.Helper()
	b, err := display.NewBoard("Lobby", "OPD", "Ground floor", display.BoardToken, now)
	require.NoError(t, err)
	return b
}

func item(t *testing.T, ct display.ContentType, priority int) display.ContentItem {
	t.Helper()
	c, err := display.NewContentItem(ct, json.RawMessage(`{"text":"hello"}`), priority, nil, nil)
	require.NoError(t, err)
	return c
}

func TestNewBoard(t *testing.T) {
	b := newBoard(t)
	assert.Equal(t, display.DefaultSettings(), b.Settings())
	assert.Empty(t, b.Content())

	_, err := display.NewBoard("Lobby", "OPD", "Ground floor", display.BoardType("tv"), now)
	require.ErrorIs(t, err, display.ErrInvalidBoardType)
}

func TestBoard_AddContent(t *testing.T) {
	b := newBoard(t)
	low := item(t, display.ContentMessage, 1)
	highA := item(t, display.ContentAlert, 5)
	highB := item(t, display.ContentAlert, 5)
	mid := item(t, display.ContentToken, 3)

	for _, c := range []display.ContentItem{low, highA, mid, highB} {
		b.AddContent(c, now)
	}

	var got []string
	for _, c := range b.Content() {
		got = append(got, c.ID.String())
	}
	want := []string{highA.ID.String(), highB.ID.String(), mid.ID.String(), low.ID.String()}
	assert.Equal(t, want, got)
}

func TestBoard_ClearContent(t *testing.T) {
	b := newBoard(t)
	b.AddContent(item(t, display.ContentAlert, 1), now)
	b.AddContent(item(t, display.ContentMessage, 1), now)
	b.AddContent(item(t, display.ContentAlert, 2), now)

	only := display.ContentAlert
	removed, err := b.ClearContent(&only, now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	require.Len(t, b.Content(), 1)
	assert.Equal(t, display.ContentMessage, b.Content()[0].Type)

	removed, err = b.ClearContent(nil, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, b.Content())

	bad := display.ContentType("video")
	_, err = b.ClearContent(&bad, now)
	require.ErrorIs(t, err, display.ErrInvalidContentType)
}

func TestBoard_UpdateSettings(t *testing.T) {
	b := newBoard(t)
	mode := display.ModeEmergency
	require.NoError(t, b.UpdateSettings(display.SettingsPatch{DisplayMode: &mode}, now))
	assert.Equal(t, display.ModeEmergency, b.Settings().DisplayMode)
	assert.Equal(t, display.DefaultRefreshInterval, b.Settings().RefreshInterval)

	zero := 0
	require.ErrorIs(t, b.UpdateSettings(display.SettingsPatch{RefreshInterval: &zero}, now), display.ErrInvalidRefreshInterval)
	assert.Equal(t, display.DefaultRefreshInterval, b.Settings().RefreshInterval)
}

func TestContentItem(t *testing.T) {
	start := now.Add(time.Hour)
	end := now.Add(2 * time.Hour)

	_, err := display.NewContentItem(display.ContentMessage, nil, 0, &end, &start)
	require.ErrorIs(t, err, display.ErrInvalidContentWindow)

	_, err = display.NewContentItem(display.ContentMessage, json.RawMessage(`{bad`), 0, nil, nil)
	require.ErrorIs(t, err, display.ErrInvalidContentData)

	c, err := display.NewContentItem(display.ContentMessage, nil, 0, &start, &end)
	require.NoError(t, err)
	assert.False(t, c.VisibleAt(now))
	assert.True(t, c.VisibleAt(start))
	assert.False(t, c.VisibleAt(end))

	b := newBoard(t)
	b.AddContent(c, now)
	b.AddContent(item(t, display.ContentAlert, 0), now)
	assert.Len(t, b.VisibleContent(now), 1)
	assert.Len(t, b.VisibleContent(start), 2)
}

//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"hospital-ops/internal/domain/display"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/ptr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoard(t *testing.T) (*fakeUoW, commands.DisplayCommands, uuid.UUID) {
	t.Helper()
	uow := newFakeUoW()
	b, err := display.NewBoard("Lobby", "OPD", "Ground floor", display.BoardToken, morning)
	require.NoError(t, err)
	uow.addBoard(b)
	return uow, commands.NewDisplayCommands(uow, clock.NewMockClock(morning)), b.ID()
}

func TestDisplayCommands_AddContent(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps content ordered by priority", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)

		low, err := cmds.AddContent(ctx, id, commands.ContentInput{Type: "message", Data: json.RawMessage(`{"text":"Welcome"}`), Priority: 1})
		require.NoError(t, err)
		high, err := cmds.AddContent(ctx, id, commands.ContentInput{Type: "alert", Data: json.RawMessage(`{"text":"Code blue"}`), Priority: 9})
		require.NoError(t, err)

		content := uow.boards[id].Content()
		require.Len(t, content, 2)
		assert.Equal(t, high, content[0].ID)
		assert.Equal(t, low, content[1].ID)
	})

	t.Run("invalid content type", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)
		_, err := cmds.AddContent(ctx, id, commands.ContentInput{Type: "video"})
		require.ErrorIs(t, err, display.ErrInvalidContentType)
		assert.Empty(t, uow.boards[id].Content())
	})

	t.Run("unknown board", func(t *testing.T) {
		_, cmds, _ := setupBoard(t)
		_, err := cmds.AddContent(ctx, uuid.New(), commands.ContentInput{Type: "message"})
		require.ErrorIs(t, err, queries.ErrDisplayNotFound)
	})
}

func TestDisplayCommands_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)

		require.NoError(t, cmds.UpdateSettings(ctx, id, commands.DisplaySettingsInput{DisplayMode: ptr.Of("emergency")}))
		settings := uow.boards[id].Settings()
		assert.Equal(t, display.ModeEmergency, settings.DisplayMode)
		assert.Equal(t, display.DefaultTheme, settings.Theme)
	})

	t.Run("invalid interval leaves settings unchanged", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)

		err := cmds.UpdateSettings(ctx, id, commands.DisplaySettingsInput{RefreshInterval: ptr.Of(0), Theme: ptr.Of("dark")})
		require.ErrorIs(t, err, display.ErrInvalidRefreshInterval)
		assert.Equal(t, display.DefaultSettings(), uow.boards[id].Settings())
	})

	t.Run("lost version race", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)
		uow.staleWrites = true

		err := cmds.UpdateSettings(ctx, id, commands.DisplaySettingsInput{Theme: ptr.Of("dark")})
		require.ErrorIs(t, err, commands.ErrConcurrentModification)
		assert.True(t, errs.Is(err, errs.ErrConcurrentModification))
		assert.Equal(t, display.DefaultTheme, uow.boards[id].Settings().Theme)
	})
}

func TestDisplayCommands_ClearContent(t *testing.T) {
	ctx := context.Background()

	fill := func(t *testing.T, cmds commands.DisplayCommands, id uuid.UUID) {
		t.Helper()
		for _, typ := range []string{"token", "alert", "token"} {
			_, err := cmds.AddContent(ctx, id, commands.ContentInput{Type: typ})
			require.NoError(t, err)
		}
	}

	t.Run("only one type", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)
		fill(t, cmds, id)

		removed, err := cmds.ClearContent(ctx, id, ptr.Of("token"))
		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		require.Len(t, uow.boards[id].Content(), 1)
		assert.Equal(t, display.ContentAlert, uow.boards[id].Content()[0].Type)
	})

	t.Run("everything", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)
		fill(t, cmds, id)

		removed, err := cmds.ClearContent(ctx, id, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, removed)
		assert.Empty(t, uow.boards[id].Content())
	})

	t.Run("lost version race keeps content", func(t *testing.T) {
		uow, cmds, id := setupBoard(t)
		fill(t, cmds, id)
		uow.staleWrites = true

		removed, err := cmds.ClearContent(ctx, id, nil)
		require.ErrorIs(t, err, commands.ErrConcurrentModification)
		assert.Zero(t, removed)
		assert.Len(t, uow.boards[id].Content(), 3)
	})
}

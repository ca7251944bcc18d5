package helpers

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/forgo/guildstream/internal/model"
)

// ============================================================================
// Adventurer Helpers
// ============================================================================

// Names returns the adventurer names in order
func Names(adventurers []*model.Adventurer) []string {
	return lo.Map(adventurers, func(a *model.Adventurer, _ int) string {
		return a.Name
	})
}

// GuildNames returns the guild names in order
func GuildNames(guilds []*model.Guild) []string {
	return lo.Map(guilds, func(g *model.Guild, _ int) string {
		return g.Name
	})
}

// IDSet returns the set of adventurer IDs
func IDSet(adventurers []*model.Adventurer) map[uuid.UUID]struct{} {
	return lo.SliceToMap(adventurers, func(a *model.Adventurer) (uuid.UUID, struct{}) {
		return a.ID, struct{}{}
	})
}

// GoldSnapshot records each adventurer's gold keyed by ID
func GoldSnapshot(adventurers []*model.Adventurer) map[uuid.UUID]float64 {
	return lo.SliceToMap(adventurers, func(a *model.Adventurer) (uuid.UUID, float64) {
		return a.ID, a.GoldEarned
	})
}

// ============================================================================
// Logging Helpers
// ============================================================================

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewTestLogger returns a debug-level logger that writes through t.Log
func NewTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

package service

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/forgo/guildstream/internal/model"
)

// Bonus gold event parameters
const (
	BonusGoldThreshold  = 1000.0
	BonusGoldMultiplier = 1.20
)

// RosterService runs queries and reports over a collection of guilds
type RosterService struct {
	out    io.Writer
	logger *slog.Logger
}

// RosterServiceConfig holds configuration for the roster service
type RosterServiceConfig struct {
	// Out receives the human-readable reports. Defaults to os.Stdout;
	// pass io.Discard to suppress printing.
	Out    io.Writer
	Logger *slog.Logger
}

// AgeRank is one entry of the average-age ranking
type AgeRank struct {
	Guild      *model.Guild
	AverageAge float64
}

// NewRosterService creates a new roster service
func NewRosterService(cfg RosterServiceConfig) *RosterService {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterService{out: out, logger: logger}
}

// Flatten concatenates every guild's adventurers, guild order first.
// Nil guilds are skipped.
func Flatten(guilds []*model.Guild) []*model.Adventurer {
	return lo.FlatMap(lo.Compact(guilds), func(g *model.Guild, _ int) []*model.Adventurer {
		return g.Adventurers()
	})
}

// FilterBySkill returns every adventurer that knows the skill, in flatten order
func (s *RosterService) FilterBySkill(guilds []*model.Guild, skill model.Skill) []*model.Adventurer {
	matches := lo.Filter(Flatten(guilds), func(a *model.Adventurer, _ int) bool {
		return a.HasSkill(skill)
	})

	s.logger.Debug("filtered adventurers by skill",
		slog.String("skill", skill.String()),
		slog.Int("matches", len(matches)),
	)
	return matches
}

// GroupByRole partitions adventurers by their exact role and prints each
// group, roles in first-seen order.
func (s *RosterService) GroupByRole(guilds []*model.Guild) map[string][]*model.Adventurer {
	all := Flatten(guilds)
	groups := lo.GroupBy(all, func(a *model.Adventurer) string {
		return a.Role
	})

	roles := lo.Uniq(lo.Map(all, func(a *model.Adventurer, _ int) string {
		return a.Role
	}))
	for _, role := range roles {
		s.printf("Role: %s\n", role)
		for _, a := range groups[role] {
			s.printf("  - %s\n", a.Name)
		}
	}

	s.logger.Debug("grouped adventurers by role", slog.Int("groups", len(groups)))
	return groups
}

// FindMostSkilled returns the adventurer with the longest skill list.
// On a tie the adventurer appearing last in flatten order wins.
func (s *RosterService) FindMostSkilled(guilds []*model.Guild) mo.Option[*model.Adventurer] {
	all := Flatten(guilds)
	if len(all) == 0 {
		return mo.None[*model.Adventurer]()
	}

	// MaxBy replaces its candidate whenever the comparison holds, so >= lets
	// later equal entries win.
	best := lo.MaxBy(all, func(a, b *model.Adventurer) bool {
		return a.SkillCount() >= b.SkillCount()
	})
	return mo.Some(best)
}

// RankByAverageAge prints guild names in ascending order of mean member age
// and returns the ranking. Ties keep their input order; the input slice is
// not reordered.
func (s *RosterService) RankByAverageAge(guilds []*model.Guild) []AgeRank {
	ranking := lo.Map(lo.Compact(guilds), func(g *model.Guild, _ int) AgeRank {
		return AgeRank{Guild: g, AverageAge: g.AverageAge()}
	})
	slices.SortStableFunc(ranking, func(a, b AgeRank) int {
		return cmp.Compare(a.AverageAge, b.AverageAge)
	})

	for _, r := range ranking {
		s.printf("%s\n", r.Guild.Name)
	}
	return ranking
}

// SkillCountMap counts, per skill, how many adventurers know it.
// Skills nobody knows are absent from the map.
func (s *RosterService) SkillCountMap(guilds []*model.Guild) map[model.Skill]int {
	skills := lo.FlatMap(Flatten(guilds), func(a *model.Adventurer, _ int) []model.Skill {
		return a.Skills
	})
	return lo.CountValues(skills)
}

// PrintSkillCounts prints "SKILL - N" lines in skill declaration order
func (s *RosterService) PrintSkillCounts(counts map[model.Skill]int) {
	for _, skill := range model.AllSkills() {
		if n, ok := counts[skill]; ok {
			s.printf("%s - %d\n", skill, n)
		}
	}
}

// BonusGoldEvent raises GoldEarned by 20% for every adventurer below the
// threshold. Each call applies the bonus again to anyone still below it.
func (s *RosterService) BonusGoldEvent(guilds []*model.Guild) {
	eligible := lo.Filter(Flatten(guilds), func(a *model.Adventurer, _ int) bool {
		return a.GoldEarned < BonusGoldThreshold
	})
	lo.ForEach(eligible, func(a *model.Adventurer, _ int) {
		a.GoldEarned *= BonusGoldMultiplier
	})

	s.logger.Debug("applied bonus gold event", slog.Int("boosted", len(eligible)))
}

// PrintAdventurers prints one adventurer per line
func (s *RosterService) PrintAdventurers(adventurers []*model.Adventurer) {
	for _, a := range adventurers {
		s.printf("%s\n", a)
	}
}

// PrintGoldLedger prints every adventurer's current gold, grouped by guild
func (s *RosterService) PrintGoldLedger(guilds []*model.Guild) {
	for _, g := range lo.Compact(guilds) {
		s.printf("%s\n", g.Name)
		for _, a := range g.Adventurers() {
			s.printf("  - %s: %.2f\n", a.Name, a.GoldEarned)
		}
	}
}

func (s *RosterService) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.logger.Warn("failed to write report", slog.String("error", err.Error()))
	}
}

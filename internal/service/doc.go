// Package service implements the guild roster operations for guildstream.
//
// The service package contains the sample data builder and every query or
// aggregation that runs over a collection of guilds. Services are the only
// layer the command package talks to.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct
//   - Zero values in the config fall back to defaults (stdout, slog.Default)
//   - Operations are total: empty input yields empty results, never errors
//
// # Flattening
//
// Most operations first flatten the guild collection: every guild's
// adventurers are concatenated, guild order first and member order second.
// Operations read members through model.Guild.Adventurers, so they never
// alter a guild's membership. BonusGoldEvent is the only operation that
// mutates anything, and it only touches GoldEarned.
//
// # Example Usage
//
//	seeder := NewSeederService()
//	roster := NewRosterService(RosterServiceConfig{Out: os.Stdout})
//	guilds := seeder.SampleGuilds()
//	archers := roster.FilterBySkill(guilds, model.SkillArchery)
//	best, ok := roster.FindMostSkilled(guilds).Get()
package service

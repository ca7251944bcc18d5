// Package fixtures provides guild and adventurer factories for tests.
//
// Each factory creates entities with sensible defaults while allowing
// customization via option structs. Random factories are seeded so that a
// failing property test can be replayed.
//
// Usage:
//
//	f := fixtures.New()
//	pocket := f.Adventurer(fixtures.AdventurerOpts{Name: "Pocket"})
//	guild := f.Guild("Amber Hand", pocket)
//	guilds := fixtures.RandomGuilds(rand.New(rand.NewPCG(seed, seed)))
package fixtures

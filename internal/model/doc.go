// Package model defines the domain entities for guildstream.
//
// The model package contains the Guild and Adventurer records, the closed
// Skill enumeration, and the sentinel errors raised when those records are
// built or mutated. Models are shared by every other package.
//
// # Domain Entities
//
//   - Skill: one value from a fixed set of named capabilities
//   - Adventurer: an individual with name, age, role, gold earned and skills
//   - Guild: a named group that owns an ordered list of adventurers
//
// # Ownership
//
// A Guild is the single mutable owner of its adventurer list. Callers add or
// remove members through the Guild methods and read them through
// Adventurers, which returns a copy of the list:
//
//	guild := model.NewGuild("Amber Hand")
//	_ = guild.AddAdventurer(pocket)
//	for _, a := range guild.Adventurers() {
//	    fmt.Println(a.Name)
//	}
//
// # Identity
//
// Adventurers and guilds carry name-based UUIDs so that the same sample data
// always produces the same identifiers.
package model

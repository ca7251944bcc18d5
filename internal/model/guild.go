package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var guildNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("guildstream:guild"))

// Guild represents a named group that owns an ordered list of adventurers
type Guild struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	adventurers []*Adventurer
}

// NewGuild creates a guild with the given members, in order
func NewGuild(name string, adventurers ...*Adventurer) *Guild {
	g := &Guild{
		ID:          uuid.NewSHA1(guildNamespace, []byte(name)),
		Name:        name,
		adventurers: make([]*Adventurer, 0, len(adventurers)),
	}
	for _, a := range adventurers {
		if a != nil {
			g.adventurers = append(g.adventurers, a)
		}
	}
	return g
}

// Adventurers returns a copy of the member list.
// The adventurers themselves are shared with the guild.
func (g *Guild) Adventurers() []*Adventurer {
	return slices.Clone(g.adventurers)
}

// Len returns the number of members
func (g *Guild) Len() int {
	return len(g.adventurers)
}

// AddAdventurer appends a member to the end of the list
func (g *Guild) AddAdventurer(a *Adventurer) error {
	if a == nil {
		return ErrAdventurerRequired
	}
	if a.Name == "" {
		return ErrAdventurerNameEmpty
	}
	g.adventurers = append(g.adventurers, a)
	return nil
}

// RemoveAdventurer removes the first member with the given name
func (g *Guild) RemoveAdventurer(name string) (*Adventurer, error) {
	i := slices.IndexFunc(g.adventurers, func(a *Adventurer) bool {
		return a.Name == name
	})
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrAdventurerNotFound, name)
	}
	removed := g.adventurers[i]
	g.adventurers = slices.Delete(g.adventurers, i, i+1)
	return removed, nil
}

// AverageAge returns the mean member age, or 0 for an empty guild
func (g *Guild) AverageAge() float64 {
	return lo.MeanBy(g.adventurers, func(a *Adventurer) float64 {
		return float64(a.Age)
	})
}

func (g *Guild) String() string {
	members := make([]string, len(g.adventurers))
	for i, a := range g.adventurers {
		members[i] = a.String()
	}
	return g.Name + " is a guild with the following members: [" + strings.Join(members, ", ") + "]"
}

// CompareGuilds orders guilds lexicographically by name
func CompareGuilds(a, b *Guild) int {
	return strings.Compare(a.Name, b.Name)
}

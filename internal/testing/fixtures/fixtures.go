package fixtures

import (
	"fmt"
	"math/rand/v2"

	"github.com/forgo/guildstream/internal/model"
)

// Factory creates test entities with unique default names
type Factory struct {
	seq int
}

// New creates a new fixture factory
func New() *Factory {
	return &Factory{}
}

// ============================================================================
// Adventurer Fixtures
// ============================================================================

// AdventurerOpts customizes adventurer creation
type AdventurerOpts struct {
	Name   string
	Age    int
	Role   string
	Gold   float64
	Skills []model.Skill
}

// Adventurer creates an adventurer, filling unset fields with defaults
func (f *Factory) Adventurer(opts AdventurerOpts) *model.Adventurer {
	f.seq++
	if opts.Name == "" {
		opts.Name = fmt.Sprintf("Adventurer %d", f.seq)
	}
	if opts.Age == 0 {
		opts.Age = 25
	}
	if opts.Role == "" {
		opts.Role = "Warrior"
	}
	return model.NewAdventurer(opts.Name, opts.Age, opts.Role, opts.Gold, opts.Skills...)
}

// ============================================================================
// Guild Fixtures
// ============================================================================

// Guild creates a guild with the given members
func (f *Factory) Guild(name string, adventurers ...*model.Adventurer) *model.Guild {
	f.seq++
	if name == "" {
		name = fmt.Sprintf("Guild %d", f.seq)
	}
	return model.NewGuild(name, adventurers...)
}

// ============================================================================
// Random Fixtures
// ============================================================================

var roles = []string{"Wizard", "Rogue", "Archer", "Healer", "Warrior", "rogue"}

// RandomGuilds builds up to four guilds of up to six adventurers each.
// Guilds may be empty; adventurer names are unique across the result.
func RandomGuilds(r *rand.Rand) []*model.Guild {
	skills := model.AllSkills()
	guilds := make([]*model.Guild, r.IntN(5))
	n := 0
	for i := range guilds {
		members := make([]*model.Adventurer, r.IntN(7))
		for j := range members {
			n++
			picked := make([]model.Skill, r.IntN(len(skills)+1))
			for k := range picked {
				picked[k] = skills[r.IntN(len(skills))]
			}
			members[j] = model.NewAdventurer(
				fmt.Sprintf("Adventurer %d", n),
				r.IntN(80),
				roles[r.IntN(len(roles))],
				r.Float64()*3000,
				picked...,
			)
		}
		guilds[i] = model.NewGuild(fmt.Sprintf("Guild %d", i), members...)
	}
	return guilds
}

package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var adventurerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("guildstream:adventurer"))

// Adventurer represents an individual guild member
type Adventurer struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Role       string    `json:"role"` // open-ended, e.g. Wizard, Rogue
	GoldEarned float64   `json:"gold_earned"`
	Skills     []Skill   `json:"skills"`
}

// NewAdventurer creates an adventurer whose ID is derived from its name.
// Skills are copied; a missing skill list becomes an empty one.
func NewAdventurer(name string, age int, role string, goldEarned float64, skills ...Skill) *Adventurer {
	owned := make([]Skill, len(skills))
	copy(owned, skills)
	return &Adventurer{
		ID:         uuid.NewSHA1(adventurerNamespace, []byte(name)),
		Name:       name,
		Age:        age,
		Role:       role,
		GoldEarned: goldEarned,
		Skills:     owned,
	}
}

// HasSkill returns true if the adventurer knows the skill
func (a *Adventurer) HasSkill(skill Skill) bool {
	for _, s := range a.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// SkillCount returns the number of entries in the skill list
func (a *Adventurer) SkillCount() int {
	return len(a.Skills)
}

func (a *Adventurer) String() string {
	return fmt.Sprintf("%s is a %d year old %s who has earned %s gold. They know the following skills: %s",
		a.Name, a.Age, a.Role, formatGold(a.GoldEarned), formatSkills(a.Skills))
}

// CompareAdventurers orders adventurers lexicographically by name
func CompareAdventurers(a, b *Adventurer) int {
	return strings.Compare(a.Name, b.Name)
}

func formatSkills(skills []Skill) string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// formatGold always keeps a fractional part: 2000 renders as "2000.0"
func formatGold(gold float64) string {
	if gold == math.Trunc(gold) && !math.IsInf(gold, 0) {
		return strconv.FormatFloat(gold, 'f', 1, 64)
	}
	return strconv.FormatFloat(gold, 'f', -1, 64)
}

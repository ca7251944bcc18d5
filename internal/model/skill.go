package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Skill is a named capability an adventurer can know
type Skill int

const (
	SkillStealth Skill = iota
	SkillNecromancy
	SkillRunecrafting
	SkillBlacksmithing
	SkillThievery
	SkillArchery
	SkillHealing
	SkillMemecrafting
	SkillSwordsmanship
	SkillHorsemanship
)

var skillNames = [...]string{
	SkillStealth:       "STEALTH",
	SkillNecromancy:    "NECROMANCY",
	SkillRunecrafting:  "RUNECRAFTING",
	SkillBlacksmithing: "BLACKSMITHING",
	SkillThievery:      "THIEVERY",
	SkillArchery:       "ARCHERY",
	SkillHealing:       "HEALING",
	SkillMemecrafting:  "MEMECRAFTING",
	SkillSwordsmanship: "SWORDSMANSHIP",
	SkillHorsemanship:  "HORSEMANSHIP",
}

// AllSkills returns every skill in declaration order
func AllSkills() []Skill {
	skills := make([]Skill, len(skillNames))
	for i := range skillNames {
		skills[i] = Skill(i)
	}
	return skills
}

// IsValid returns true if the skill is one of the declared values
func (s Skill) IsValid() bool {
	return s >= 0 && int(s) < len(skillNames)
}

func (s Skill) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return skillNames[s]
}

// DisplayName returns the skill in title case, e.g. "Archery"
func (s Skill) DisplayName() string {
	return cases.Title(language.English).String(strings.ToLower(s.String()))
}

// ParseSkill resolves a skill by name, ignoring case and surrounding space
func ParseSkill(name string) (Skill, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range skillNames {
		if n == normalized {
			return Skill(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
}

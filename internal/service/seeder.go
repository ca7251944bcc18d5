package service

import (
	"github.com/forgo/guildstream/internal/model"
)

// Sample guild names
const (
	GuildAmberHand     = "Amber Hand"
	GuildSapphireFlame = "Sapphire Flame"
)

// SeederService builds the fixed demonstration roster
type SeederService struct{}

// NewSeederService creates a new seeder service
func NewSeederService() *SeederService {
	return &SeederService{}
}

// SampleGuilds returns two guilds of four adventurers each.
// Every call builds fresh values, so callers may mutate the result freely.
func (s *SeederService) SampleGuilds() []*model.Guild {
	amberHand := model.NewGuild(GuildAmberHand,
		model.NewAdventurer("Pocket", 19, "Wizard", 2000.0,
			model.SkillStealth, model.SkillNecromancy, model.SkillRunecrafting),
		model.NewAdventurer("Lash", 35, "Rogue", 3500.0,
			model.SkillBlacksmithing, model.SkillThievery),
		model.NewAdventurer("Vindicta", 21, "Archer", 1000.0,
			model.SkillArchery, model.SkillNecromancy, model.SkillThievery),
		model.NewAdventurer("Mina", 22, "Rogue", 20000.0,
			model.SkillArchery, model.SkillThievery, model.SkillStealth),
	)

	sapphireFlame := model.NewGuild(GuildSapphireFlame,
		model.NewAdventurer("Bebop", 40, "Wizard", 400.0,
			model.SkillArchery, model.SkillBlacksmithing),
		model.NewAdventurer("Kelvin", 34, "Healer", 3000.0,
			model.SkillHealing, model.SkillMemecrafting, model.SkillSwordsmanship),
		model.NewAdventurer("Abrams", 28, "Warrior", 6000.0,
			model.SkillSwordsmanship, model.SkillHorsemanship),
		model.NewAdventurer("Dynamo", 30, "Wizard", 100.0,
			model.SkillHealing, model.SkillMemecrafting, model.SkillSwordsmanship, model.SkillRunecrafting),
	)

	return []*model.Guild{amberHand, sapphireFlame}
}

package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/guildstream/internal/model"
	"github.com/forgo/guildstream/internal/testing/helpers"
)

func TestSampleGuilds_Shape(t *testing.T) {
	t.Parallel()
	guilds := NewSeederService().SampleGuilds()

	require.Len(t, guilds, 2)
	if diff := cmp.Diff([]string{GuildAmberHand, GuildSapphireFlame}, helpers.GuildNames(guilds)); diff != "" {
		t.Errorf("guild names mismatch (-want +got):\n%s", diff)
	}

	wantMembers := [][]string{
		{"Pocket", "Lash", "Vindicta", "Mina"},
		{"Bebop", "Kelvin", "Abrams", "Dynamo"},
	}
	for i, g := range guilds {
		if diff := cmp.Diff(wantMembers[i], helpers.Names(g.Adventurers())); diff != "" {
			t.Errorf("%s members mismatch (-want +got):\n%s", g.Name, diff)
		}
	}
}

func TestSampleGuilds_Pocket(t *testing.T) {
	t.Parallel()
	pocket := NewSeederService().SampleGuilds()[0].Adventurers()[0]

	assert.Equal(t, "Pocket", pocket.Name)
	assert.Equal(t, 19, pocket.Age)
	assert.Equal(t, "Wizard", pocket.Role)
	assert.Equal(t, 2000.0, pocket.GoldEarned)
	assert.Equal(t, []model.Skill{model.SkillStealth, model.SkillNecromancy, model.SkillRunecrafting}, pocket.Skills)
}

func TestSampleGuilds_FreshValuesPerCall(t *testing.T) {
	t.Parallel()
	seeder := NewSeederService()
	first := seeder.SampleGuilds()
	second := seeder.SampleGuilds()

	first[1].Adventurers()[0].GoldEarned = 1

	assert.Equal(t, 400.0, second[1].Adventurers()[0].GoldEarned)
	assert.Equal(t, first[0].ID, second[0].ID)
}

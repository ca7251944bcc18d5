package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setEnv(t *testing.T, skill string) {
	t.Helper()
	t.Setenv("GUILDSTREAM_ENV", "test")
	t.Setenv("GUILDSTREAM_LOG_LEVEL", "warn")
	t.Setenv("GUILDSTREAM_LOG_FORMAT", "text")
	t.Setenv("GUILDSTREAM_DEMO_SKILL", skill)
}

func TestRootCommand_RunsDemoInOrder(t *testing.T) {
	setEnv(t, "ARCHERY")

	out, _, err := runRoot(t)
	require.NoError(t, err)

	headers := []string{
		"Filtered Adventurers by Skill (Archery)",
		"Groups Adventurers By Role",
		"Finds the Adventurer with the Most Skills",
		"Ranks Guilds by the Average Age",
		"Shows How Many Adventurers Know Each Skill",
		"Applies the Bonus Gold Event",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.GreaterOrEqual(t, idx, 0, "missing header %q", h)
		assert.Greater(t, idx, last, "header %q out of order", h)
		last = idx
	}

	assert.Contains(t, out, "Vindicta is a 21 year old Archer")
	assert.Contains(t, out, "Role: Wizard\n  - Pocket\n  - Bebop\n  - Dynamo\n")
	assert.Contains(t, out, "Dynamo is a 30 year old Wizard who has earned 100.0 gold")
	assert.Contains(t, out, "Amber Hand\nSapphire Flame\n")
	assert.Contains(t, out, "THIEVERY - 3\n")
	assert.Contains(t, out, "  - Bebop: 480.00\n")
	assert.Contains(t, out, "  - Dynamo: 120.00\n")
}

func TestRootCommand_ConfiguredSkill(t *testing.T) {
	setEnv(t, "stealth")

	out, _, err := runRoot(t)
	require.NoError(t, err)

	section := out[:strings.Index(out, "Groups Adventurers By Role")]
	assert.Contains(t, section, "Filtered Adventurers by Skill (Stealth)")
	assert.Contains(t, section, "Pocket is a 19 year old Wizard")
	assert.Contains(t, section, "Mina is a 22 year old Rogue")
	assert.NotContains(t, section, "Bebop")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	setEnv(t, "juggling")

	out, _, err := runRoot(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown skill")
	assert.Empty(t, out)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	setEnv(t, "ARCHERY")
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

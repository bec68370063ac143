package main

import (
	"path/filepath"
	"testing"

	"github.com/lox/dartboard/internal/config"
	"github.com/lox/dartboard/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerFlag(t *testing.T) {
	pc, err := parsePlayerFlag("Alice:7")
	require.NoError(t, err)
	assert.Equal(t, config.PlayerConfig{Name: "Alice", Skill: 7}, pc)

	pc, err = parsePlayerFlag("team:red : 3")
	require.NoError(t, err)
	assert.Equal(t, "team:red", pc.Name)
	assert.Equal(t, 3, pc.Skill)

	_, err = parsePlayerFlag("Bob")
	assert.ErrorIs(t, err, game.ErrInvalidPlayer)

	_, err = parsePlayerFlag("Bob:high")
	assert.ErrorIs(t, err, game.ErrInvalidSkill)
}

func TestPlayCmdApplyOverrides(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	cmd := &PlayCmd{
		Players: []string{"Ann:9", "Ben:2"},
		Rounds:  3,
		Type:    "distance",
		Scale:   2,
		Seed:    42,
	}
	require.NoError(t, cmd.apply(cfg))
	require.NoError(t, cfg.Validate())

	players, err := cfg.GamePlayers()
	require.NoError(t, err)
	assert.Equal(t, []game.Player{{Name: "Ann", Skill: 9}, {Name: "Ben", Skill: 2}}, players)
	assert.Equal(t, 3, cfg.Game.Rounds)
	assert.Equal(t, 2.0, cfg.Game.Scale)
	assert.Equal(t, int64(42), cfg.Game.Seed)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, game.Distance, mode)
}

func TestPlayCmdApplyKeepsFileValues(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, (&PlayCmd{}).apply(cfg))

	assert.Len(t, cfg.Players, 2)
	assert.Equal(t, config.DefaultRounds, cfg.Game.Rounds)
	assert.Equal(t, config.DefaultMode, cfg.Game.Mode)
}

func TestPlayCmdRejectsBadSkill(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, (&PlayCmd{Players: []string{"Zed:11"}}).apply(cfg))
	assert.ErrorIs(t, cfg.Validate(), game.ErrInvalidSkill)
}

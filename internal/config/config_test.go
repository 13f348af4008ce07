package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	t.Run("it holds the fixed composition", func(t *testing.T) {
		assert.Len(t, cfg.Characters, NumCharacters)
		assert.Len(t, cfg.Weapons, NumWeapons)
		assert.Len(t, cfg.Rooms, NumRooms)
		assert.Len(t, cfg.AllCards, NumCharacters+NumWeapons+NumRooms)
	})

	t.Run("it maps every card to its category", func(t *testing.T) {
		assert.Equal(t, CategoryCharacter, cfg.CardToType["Miss Scarlet"])
		assert.Equal(t, CategoryWeapon, cfg.CardToType["Rope"])
		assert.Equal(t, CategoryRoom, cfg.CardToType["Kitchen"])
	})

	t.Run("categories are sorted and grouped", func(t *testing.T) {
		assert.Equal(t, "Colonel Mustard", cfg.AllCards[0])
		assert.Equal(t, "Candlestick", cfg.AllCards[NumCharacters])
		assert.Equal(t, "Ballroom", cfg.AllCards[NumCharacters+NumWeapons])
	})
}

func TestLoadRejectsOtherCompositions(t *testing.T) {
	// GIVEN a card file with only five weapons
	path := filepath.Join(t.TempDir(), "cards.json")
	body := `{
		"characters": ["A", "B", "C", "D", "E", "F"],
		"weapons": ["1", "2", "3", "4", "5"],
		"rooms": ["r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	// WHEN it is loaded
	_, err := Load(path)

	// THEN the composition is refused
	assert.ErrorIs(t, err, ErrInvalidComposition)
}

func TestLoadRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	body := `{
		"characters": ["A", "B", "C", "D", "E", "F"],
		"weapons": ["1", "2", "3", "4", "5", "A"],
		"rooms": ["r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidComposition)
}

func TestDeepCopy(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	clone := cfg.DeepCopy()
	clone.Characters[0] = "Somebody Else"
	clone.CardToType["Rope"] = CategoryRoom

	assert.NotEqual(t, "Somebody Else", cfg.Characters[0])
	assert.Equal(t, CategoryWeapon, cfg.CardToType["Rope"])
}

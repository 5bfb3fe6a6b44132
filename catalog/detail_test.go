package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaveworks/common/test"

	"github.com/psview/psview/catalog"
	"github.com/psview/psview/test/fixture"
)

func TestDetail(t *testing.T) {
	pokedex, moves := fixture.Pokedex(), fixture.Moves()
	pikachu, ok := pokedex.Get("pikachu")
	require.True(t, ok)

	have := catalog.NewDetail("pikachu", pikachu, moves)

	assert.Equal(t, "Pikachu", have.Name)
	assert.Equal(t, 25, have.Num)
	assert.Equal(t, catalog.SpriteURL("pikachu"), have.Sprite)
	assert.Equal(t, []string{"Static", "Lightning Rod"}, have.Abilities)
	assert.Equal(t, []catalog.Stat{
		{Label: "HP", Value: "35"},
		{Label: "Attack", Value: "55"},
		{Label: "Defense", Value: "40"},
		{Label: "Sp. Atk", Value: "50"},
		{Label: "Sp. Def", Value: "50"},
		{Label: "Speed", Value: "90"},
	}, have.Stats)

	// volttackle isn't in the move list, so it is left out.
	want := []catalog.MoveSummary{
		{ID: "thunderbolt", Name: "Thunderbolt", Type: "Electric", Power: "90", Accuracy: "100", PP: "15", Category: "Special"},
		{ID: "quickattack", Name: "Quick Attack", Type: "Normal", Power: "40", Accuracy: "100", PP: "30", Category: "Physical"},
		{ID: "swordsdance", Name: "Swords Dance", Type: catalog.DefaultMoveType, Power: "0", Accuracy: "-", PP: "20", Category: "Status"},
	}
	if !assert.ObjectsAreEqual(want, have.Moves) {
		t.Error(test.Diff(want, have.Moves))
	}
}

func TestDetailWithoutLearnset(t *testing.T) {
	pokedex := fixture.Pokedex()
	mrmime, _ := pokedex.Get("mrmime")

	have := catalog.NewDetail("mrmime", mrmime, nil)
	assert.Equal(t, "Mr. Mime", have.Name)
	assert.Empty(t, have.Moves)
	assert.Empty(t, have.Stats)
	assert.Empty(t, have.Abilities)
	assert.False(t, catalog.HasLearnset(mrmime))
}

func TestLearnsetShapes(t *testing.T) {
	asList := catalog.Record{"learnset": []interface{}{"b", "a", 3}}
	assert.Equal(t, []string{"b", "a"}, catalog.Learnset(asList))

	asObject := catalog.Record{"learnset": map[string]interface{}{
		"thunderbolt": []interface{}{"8M"},
		"agility":     []interface{}{"8L1"},
	}}
	assert.Equal(t, []string{"agility", "thunderbolt"}, catalog.Learnset(asObject))

	assert.Empty(t, catalog.Learnset(catalog.Record{}))
}

func TestSummarizeMovesDefaults(t *testing.T) {
	moves := makeCatalog(catalog.Move, []string{"bare"}, catalog.Record{})

	have := catalog.SummarizeMoves([]string{"bare", "missing"}, moves)
	assert.Equal(t, []catalog.MoveSummary{{
		ID:       "bare",
		Name:     "bare",
		Type:     "Normal",
		Power:    "-",
		Accuracy: "-",
		PP:       "-",
		Category: "-",
	}}, have)

	assert.Empty(t, catalog.SummarizeMoves([]string{"bare"}, nil))
}

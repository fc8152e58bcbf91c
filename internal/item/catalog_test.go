package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/effect"
)

func TestLookup(t *testing.T) {
	t.Run("returns ability text for catalog items", func(t *testing.T) {
		cases := map[string]string{
			"Potion":       "Heal: 20",
			"Super Potion": "Heal: 60",
			"Hyper Potion": "Heal: 120",
			"Full Recover": "Heal: 999, Status: None",
		}
		for name, want := range cases {
			got, err := Lookup(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("unknown names fail", func(t *testing.T) {
		for _, name := range []string{"Elixir", "potion", "Potion ", ""} {
			_, err := Lookup(name)
			assert.ErrorIs(t, err, domain.ErrUnknownItem, name)
			assert.False(t, Exists(name), name)
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("builds descriptor", func(t *testing.T) {
		d, err := New(FullRecover)

		require.NoError(t, err)
		assert.Equal(t, domain.ItemDescriptor{Name: "Full Recover", AbilityText: "Heal: 999, Status: None"}, d)
	})

	t.Run("refuses unknown items", func(t *testing.T) {
		d, err := New("Master Ball")

		assert.ErrorIs(t, err, domain.ErrUnknownItem)
		assert.Contains(t, err.Error(), "Master Ball")
		assert.Empty(t, d.Name)
	})
}

func TestNames(t *testing.T) {
	names := Names()

	assert.Equal(t, []string{"Antidote", "Full Recover", "Hyper Potion", "Potion", "Super Potion"}, names)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(effect.NewRegistry()))
}

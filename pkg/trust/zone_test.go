package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCrossing(t *testing.T) {
	cases := []struct {
		name    string
		from    Zone
		to      Zone
		allowed bool
	}{
		{"same zone", System, System, true},
		{"human origin ascending", Human, Governance, true},
		{"human origin descending", Human, External, true},
		{"descending crossing", Governance, External, true},
		{"ascending crossing blocked", External, Human, false},
		{"ascending crossing blocked system to governance", System, Governance, false},
		{"unknown from zone", Zone("ROGUE"), Human, false},
		{"unknown to zone", Human, Zone("ROGUE"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckCrossing(tc.from, tc.to)
			assert.Equal(t, tc.allowed, got.Allowed)
			assert.False(t, got.RequiresValidation, "no crossing rule ever requires validation")
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	human, _ := Level(Human)
	governance, _ := Level(Governance)
	system, _ := Level(System)
	external, _ := Level(External)

	assert.Greater(t, human, governance)
	assert.Greater(t, governance, system)
	assert.Greater(t, system, external)

	_, ok := Level(Zone("ROGUE"))
	assert.False(t, ok)
}

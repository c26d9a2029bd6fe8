package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-loot/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("loot")
	assert.Equal(t, "loot_1", g.Generate())
	assert.Equal(t, "loot_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	g := idgen.NewUUID("session")
	id := g.Generate()

	require.True(t, strings.HasPrefix(id, "session_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "session_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, g.Generate())
}

package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("game")
	assert.Equal(t, "game_1", gen.Generate())
	assert.Equal(t, "game_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("game")

	first := gen.Generate()
	require.True(t, strings.HasPrefix(first, "game_"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "game_"))
	require.NoError(t, err)

	assert.NotEqual(t, first, gen.Generate())
}

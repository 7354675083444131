package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppCommands(t *testing.T) {
	app := newApp()

	migrate := app.Command("migrate")
	require.NotNil(t, migrate)
	assert.NotNil(t, migrate.Action)

	seed := app.Command("seed")
	require.NotNil(t, seed)
	require.Len(t, seed.Flags, 1)
	assert.Equal(t, []string{"migrate"}, seed.Flags[0].Names())

	assert.Nil(t, app.Command("drop"))
}

package root

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/adapter/memory"
	"levelup/internal/config"
)

func TestWorkoutsCommandSingleDay(t *testing.T) {
	cmd := newWorkoutsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Day 2: Legs")
	assert.NotContains(t, out.String(), "Day 1:")
}

func TestWorkoutsCommandUnknownDay(t *testing.T) {
	cmd := newWorkoutsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"9"})

	assert.ErrorContains(t, cmd.Execute(), "no workout day 9")
}

func TestOpenStoreMemory(t *testing.T) {
	store, closeFn, err := openStore(config.StoreConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	assert.IsType(t, &memory.DB{}, store)
	require.NoError(t, store.PutBlobs(context.Background(), map[string][]byte{"stats": []byte(`{}`)}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(3, 0))
	assert.Equal(t, 50.0, percent(3, 6))
}

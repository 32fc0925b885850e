package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	sc "github.com/taskvault/taskvault/internal/server/config"
)

func TestFromConfig_Memory(t *testing.T) {
	t.Parallel()

	cfg := &sc.Config{}
	cfg.LoadDefaults()

	m, err := FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, m.Accounts())
	require.NotNil(t, m.Tasks())
	require.NoError(t, m.Close())
}

func TestFromConfig_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.StoreBackend = "tape"

	_, err := FromConfig(context.Background(), cfg)
	require.Error(t, err)
}

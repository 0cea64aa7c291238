package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)

	assert.Equal(t, 2*time.Second, cfg.Chat.ReplyDelay)
	assert.NotEmpty(t, cfg.Chat.ReplyText)
	assert.Equal(t, 500, cfg.Chat.MaxMessageLength)

	assert.Equal(t, 15.0, cfg.TabBar.Spring.Damping)
	assert.Equal(t, 150.0, cfg.TabBar.Spring.Stiffness)

	require.Len(t, cfg.TabBar.Tabs, 4)
	assert.Equal(t, "home", cfg.TabBar.Tabs[0].Name)
	assert.Equal(t, "/", cfg.TabBar.Tabs[0].Route)
	assert.Equal(t, "messages", cfg.TabBar.Tabs[2].Name)

	assert.Equal(t, 10, cfg.Search.RecentLimit)
	assert.Empty(t, cfg.Metrics.Port)
}

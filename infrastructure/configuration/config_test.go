package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_Defaults(t *testing.T) {
	t.Run("app_defaults", func(t *testing.T) {
		require.NotNil(t, &C)
		// Port falls back to 10001 when neither config nor env provide one.
		assert.NotZero(t, C.App.Port)
	})

	t.Run("campaign_defaults", func(t *testing.T) {
		assert.Greater(t, C.Campaign.EndingSoonDays, 0)
		assert.Greater(t, C.Campaign.RotationIntervalMs, 0)
		assert.Greater(t, C.Campaign.RefreshSeconds, 0)
	})

	t.Run("database_sections_present", func(t *testing.T) {
		assert.NotEmpty(t, C.Database.MySql.Host)
		assert.NotEmpty(t, C.Database.Psql.Host)
	})
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	t.Run("should expose form cues", func(t *testing.T) {
		cue, ok := c.FormCue("Squat")
		require.True(t, ok)
		assert.Equal(t, "Chest tall; knees out; hips back.", cue)

		_, ok = c.FormCue("Unknown Exercise")
		assert.False(t, ok)
	})

	t.Run("should expose prescriptions", func(t *testing.T) {
		p, ok := c.Prescription("Kettlebell Swings")
		require.True(t, ok)
		assert.Equal(t, "EMOM × 10 reps/min | Rest: balance of min", p.String())

		p, ok = c.Prescription("Lunge")
		require.True(t, ok)
		assert.Equal(t, "3 × 10/leg | Rest: 60s", p.String())
	})

	t.Run("should return category warm-ups and cool-downs", func(t *testing.T) {
		assert.Equal(t, []string{"Standing Quad Stretch", "Hamstring Stretch"}, c.Warmups(domain.CategoryLegs))
		assert.Equal(t, []string{"Standing Quad Stretch", "Hamstring Stretch", "Figure-4 Stretch"}, c.Cooldowns(domain.CategoryLegs))
	})

	t.Run("should fall back to general for unknown category", func(t *testing.T) {
		assert.Equal(t, c.Warmups(domain.CategoryGeneral), c.Warmups(domain.Category("yoga")))
		assert.Equal(t, c.Cooldowns(domain.CategoryGeneral), c.Cooldowns(domain.Category("yoga")))
	})

	t.Run("should list the cardio circuit", func(t *testing.T) {
		assert.Equal(t, []string{"Kettlebell Swings", "DB Thrusters", "Jump Rope"}, c.CardioCircuit())
	})

	t.Run("returned slices should not alias the tables", func(t *testing.T) {
		w := c.Warmups(domain.CategoryPull)
		w[0] = "changed"
		assert.Equal(t, "Arm Circles", c.Warmups(domain.CategoryPull)[0])
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "Should parse minimal catalog",
			data: `
warmups:
  general: [A]
cooldowns:
  general: [B]
`,
		},
		{
			name: "Should fail without general warm-ups",
			data: `
warmups:
  pull: [A]
cooldowns:
  general: [B]
`,
			wantErr: true,
		},
		{
			name: "Should fail without general cool-downs",
			data: `
warmups:
  general: [A]
`,
			wantErr: true,
		},
		{
			name:    "Should fail on invalid yaml",
			data:    "warmups: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Empty(t, c.CardioCircuit())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("should use embedded catalog for empty path", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Len(t, c.CardioCircuit(), 3)
	})

	t.Run("should read catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		data := "warmups:\n  general: [Jog]\ncooldowns:\n  general: [Walk]\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Jog"}, c.Warmups(domain.CategoryPush))
	})

	t.Run("should fail for missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

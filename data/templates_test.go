package data_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/components"
	"invaders/data"
)

func TestBuiltinArchetypes(t *testing.T) {
	m := data.NewArchetypeManager()

	for _, id := range []string{data.PlayerID, data.PlayerLaserID, data.EnemyID, data.EnemyLaserID, data.ExplosionID} {
		tmpl, ok := m.GetTemplate(id)
		require.True(t, ok, id)
		assert.NoError(t, data.ValidateTemplate(tmpl), id)
	}

	laser := m.MustTemplate(data.PlayerLaserID)
	assert.Equal(t, 9.0, laser.Width)
	assert.Equal(t, 54.0, laser.Height)
	tags, err := laser.TagSet()
	require.NoError(t, err)
	assert.Equal(t, components.Laser|components.FromPlayer, tags)

	assert.Equal(t, 16, m.MustTemplate(data.ExplosionID).Length)
}

func TestLoadTemplatesFromDirectoryOverridesBuiltins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemy.json"), []byte(
		`{"id":"enemy","name":"Heavy","sprite":"enemy_b.png","width":120,"height":90,"mass":80,"tags":["Enemy"]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	m := data.NewArchetypeManager()
	require.NoError(t, m.LoadTemplatesFromDirectory(dir))

	enemy := m.MustTemplate(data.EnemyID)
	assert.Equal(t, "Heavy", enemy.Name)
	assert.Equal(t, 120.0, enemy.Width)
	assert.Equal(t, 80.0, enemy.Mass)
}

func TestLoadTemplateRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"x","tags":["Boss"]}`), 0o644))

	m := data.NewArchetypeManager()
	assert.Error(t, m.LoadTemplateFromFile(bad))
	assert.Error(t, m.LoadTemplatesFromDirectory(filepath.Join(dir, "missing")))
}

func TestLoadTemplateRejectsBrokenBuiltinOverride(t *testing.T) {
	cases := map[string]string{
		"enemy without Enemy tag":           `{"id":"enemy","width":93,"height":84,"tags":[]}`,
		"player without Player tag":         `{"id":"player","width":98,"height":75,"tags":["Enemy"]}`,
		"player laser missing FromPlayer":   `{"id":"player_laser","width":9,"height":54,"tags":["Laser"]}`,
		"enemy laser missing Laser":         `{"id":"enemy_laser","width":17,"height":55,"tags":["FromEnemy"]}`,
		"explosion without Explosion tag":   `{"id":"explosion","length":16,"tags":["Enemy"]}`,
		"explosion without frames":          `{"id":"explosion","width":64,"height":64,"tags":["Explosion"]}`,
		"enemy with zero size":              `{"id":"enemy","width":0,"height":84,"tags":["Enemy"]}`,
		"player laser with zero height box": `{"id":"player_laser","width":9,"tags":["Laser","FromPlayer"]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "override.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			m := data.NewArchetypeManager()
			before := *m.MustTemplate(data.EnemyID)
			assert.Error(t, m.LoadTemplateFromFile(path))
			assert.Equal(t, before, *m.MustTemplate(data.EnemyID), "rejected override must not replace the built-in")
		})
	}
}

func TestValidateTemplateAllowsExtraTagsAndCustomArchetypes(t *testing.T) {
	assert.NoError(t, data.ValidateTemplate(&data.ArchetypeTemplate{
		ID: data.EnemyID, Width: 10, Height: 10, Tags: []string{"Enemy", "Laser"},
	}))
	assert.NoError(t, data.ValidateTemplate(&data.ArchetypeTemplate{ID: "decoration"}))
}

func TestMustTemplatePanicsOnUnknown(t *testing.T) {
	m := data.NewArchetypeManager()
	assert.Panics(t, func() { m.MustTemplate("boss") })
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0x40, 0x40, 0xbf, 0xff}, data.ParseHexColor("#4040bf"))
	assert.Equal(t, color.RGBA{A: 0xff}, data.ParseHexColor("#12"))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, data.ParseHexColor("#zzzzzz"))
}

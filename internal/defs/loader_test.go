package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLibrary(t *testing.T) {
	t.Helper()
	saved := EnemyLibrary
	t.Cleanup(func() { EnemyLibrary = saved })
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enemies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEnemyDefinitionsOverrides(t *testing.T) {
	withLibrary(t)
	path := writeFile(t, "- name: orc\n  max_health: 90\n- name: Werewolf\n  speed: 180\n")

	require.NoError(t, LoadEnemyDefinitions(path))
	assert.Equal(t, 90.0, EnemyLibrary[EnemyOrc].MaxHealth)
	assert.Equal(t, 70.0, EnemyLibrary[EnemyOrc].Speed)
	assert.Equal(t, 180.0, EnemyLibrary[EnemyWerewolf].Speed)
	assert.Equal(t, 30.0, EnemyLibrary[EnemySkeleton].MaxHealth)
}

func TestLoadEnemyDefinitionsRejectsUnknown(t *testing.T) {
	withLibrary(t)
	before := EnemyLibrary
	path := writeFile(t, "- name: orc\n  speed: 10\n- name: dragon\n  speed: 500\n")

	err := LoadEnemyDefinitions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dragon")
	assert.Equal(t, before, EnemyLibrary)
	assert.Equal(t, 70.0, EnemyLibrary[EnemyOrc].Speed)
}

func TestLoadEnemyDefinitionsMissingFile(t *testing.T) {
	withLibrary(t)
	assert.Error(t, LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.yaml")))
}

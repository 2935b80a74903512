package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1000, cfg.Limits.MaxCapacity)
	assert.Equal(t, time.Hour, cfg.Limits.MaxInterval)
	assert.Equal(t, "unknown", cfg.Limits.DefaultEntityName)
	assert.Equal(t, "09:00", cfg.Day.Start)
	assert.Equal(t, "17:00", cfg.Day.End)
	assert.Equal(t, time.Hour, cfg.Day.Step)
	assert.Empty(t, cfg.Auth.SecretHash)
	assert.Equal(t, 1000, cfg.Limits.Container().MaxCapacity)
	assert.Equal(t, time.Hour, cfg.Limits.Work().MaxIntervalDuration)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glass.yml")
	body := []byte(`
port: "9090"
limits:
  max_capacity: 2000
  max_interval: 90m
day:
  employee: John Doe
  no_break: true
  step: 30m
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))
	t.Setenv("GLASSJOKE_DAY_CAPACITY", "750")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2000, cfg.Limits.MaxCapacity)
	assert.Equal(t, 90*time.Minute, cfg.Limits.MaxInterval)
	assert.Equal(t, "John Doe", cfg.Day.Employee)
	assert.True(t, cfg.Day.NoBreak)
	assert.Equal(t, 30*time.Minute, cfg.Day.Step)
	assert.Equal(t, 750, cfg.Day.Capacity)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v := NewViper("")
	cfg, err := FromViper(v)
	require.NoError(t, err)

	bad := cfg
	bad.Day.Step = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Auth.SecretHash = "$2a$10$abc"
	assert.Error(t, bad.Validate())

	bad.Auth.SigningKey = "k"
	assert.NoError(t, bad.Validate())
}

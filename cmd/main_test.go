package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"glassjoke/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashSecret_FromArgument(t *testing.T) {
	out, err := execute(t, "", "hash-secret", "letmein")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("letmein")))
}

func TestHashSecret_FromStdin(t *testing.T) {
	out, err := execute(t, "from-stdin\n", "hash-secret")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("from-stdin")))
}

func TestSimulate_PrintsRunAsJSON(t *testing.T) {
	out, err := execute(t, "", "simulate", "--employee", "John Doe", "--seed", "7", "--step", "1h")
	require.NoError(t, err)

	var run models.DayRun
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "John Doe", run.Employee)
	assert.Equal(t, models.RunCompleted, run.Status)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, run.Ticks)
	assert.Equal(t, 1, run.BreakTicks)
}

func TestSimulate_InvalidStep(t *testing.T) {
	_, err := execute(t, "", "simulate", "--step", "soon")
	require.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedulekit/timetable/internal/timetabling"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, cfg.Optimize)
	require.Equal(t, 300.0, cfg.MaxTimeSeconds)
	require.Equal(t, timetabling.PrintNone, cfg.PrintSolutions)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, 4, cfg.NumWorkers)
	require.False(t, cfg.Export)
	require.False(t, cfg.SearchAll)
}

func TestParseFlagsOverrideDefaults(t *testing.T) {
	cfg, err := Parse([]string{
		"--optimize=false",
		"--max-time=120",
		"--print-solutions=ALL",
		"--export",
		"--university=MIT",
		"--workers=8",
		"--search-all",
		"--search-for-invalids",
		"--debug",
	})
	require.NoError(t, err)
	require.False(t, cfg.Optimize)
	require.Equal(t, 120.0, cfg.MaxTimeSeconds)
	require.Equal(t, timetabling.PrintAll, cfg.PrintSolutions)
	require.True(t, cfg.Export)
	require.Equal(t, "MIT", cfg.University)
	require.Equal(t, 8, cfg.NumWorkers)
	require.True(t, cfg.SearchAll)
	require.True(t, cfg.SearchForInvalids)
	require.True(t, cfg.Debug)
}

func TestParseRejectsUnknownPrintMode(t *testing.T) {
	_, err := Parse([]string{"--print-solutions=WHATEVER"})
	require.Error(t, err)
}

func TestRunConfigNarrowsFields(t *testing.T) {
	cfg, err := Parse([]string{"--max-time=42", "--workers=2"})
	require.NoError(t, err)
	rc := cfg.RunConfig()
	require.Equal(t, 42.0, rc.MaxTimeSeconds)
	require.Equal(t, 2, rc.NumWorkers)
	require.Equal(t, cfg.Optimize, rc.Optimize)
	require.Equal(t, cfg.PrintSolutions, rc.PrintSolutions)
}

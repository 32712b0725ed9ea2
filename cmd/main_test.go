package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepFetcher/pkg/config"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-c", "x.yaml", "--folder", "out", "--timeout", "3s", "--progress", "http://a/1.png", "http://a/2.png"})
	require.NoError(t, err)

	assert.Equal(t, "x.yaml", f.config)
	assert.Equal(t, "out", f.override.Folder)
	assert.Equal(t, 3*time.Second, f.override.Timeout)
	assert.True(t, f.override.Progress)
	assert.Equal(t, []string{"http://a/1.png", "http://a/2.png"}, f.override.URLs)
}

func TestNoFlagsKeepReferenceRun(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)

	c := config.Default().Merge(f.override)
	assert.Equal(t, config.Default(), c)
}

func TestUnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"--nope"})
	assert.Error(t, err)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
	assert.True(t, info.HasVersion())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.False(t, info.HasVersion())
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A", info.String())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")

	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-10-01\nBuild commit: abc123", info.String())
}

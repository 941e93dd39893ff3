package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-03-01", "3f2a9c1d0be7")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-03-01", info.BuildDate())
	assert.Equal(t, "3f2a9c1d0be7", info.BuildCommit())
	assert.Equal(t, "1.4.0 (3f2a9c1)", info.String())
}

func TestAppBuildInfo_Missing(t *testing.T) {
	info := NewAppBuildInfo("", "  ", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A (N/A)", info.String())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildCommit())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const buildValueNA = "N/A"

// AppBuildInfo is the build metadata stamped into a binary through linker
// flags. Values that were not stamped read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(buildVersion),
		date:    orNA(buildDate),
		commit:  orNA(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNA(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNA(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNA(a.commit) }

// String renders a one-line form such as "1.4.0 (3f2a9c1)".
func (a AppBuildInfo) String() string {
	commit := a.BuildCommit()
	if len(commit) > 7 && commit != buildValueNA {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", a.BuildVersion(), commit)
}

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return buildValueNA
	}
	return v
}

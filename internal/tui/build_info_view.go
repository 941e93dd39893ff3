// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/quote-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("%-12s %s\n%-12s %s\n%-12s %s\n%-12s %s",
		"Application:", "quote-sync",
		"Version:", info.BuildVersion(),
		"Date:", info.BuildDate(),
		"Commit:", info.BuildCommit(),
	)
	return renderPage(titleStyle.Render("ABOUT"), body, "esc: back")
}

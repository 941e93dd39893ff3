// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the synchronized document, background revalidation, lifecycle
// triggers and the terminal editor into a single process lifecycle: the
// editor starts at once while the document reconciles in the background,
// and every exit path ends with a bounded flush of the pending edit.
package client

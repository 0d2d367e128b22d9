// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnknown = "N/A"

// AppBuildInfo carries build-time metadata injected through linker flags.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

// Version returns the release version of the binary.
func (a AppBuildInfo) Version() string { return orUnknown(a.version) }

// Date returns the build timestamp.
func (a AppBuildInfo) Date() string { return orUnknown(a.date) }

// Commit returns the source commit the binary was built from.
func (a AppBuildInfo) Commit() string { return orUnknown(a.commit) }

// String renders the build info on one line, as used by --version.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", a.Version(), a.Date(), a.Commit())
}

func orUnknown(v string) string {
	if v == "" {
		return buildInfoUnknown
	}
	return v
}

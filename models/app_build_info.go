// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfoUnknown replaces build metadata that was not injected at link time.
const BuildInfoUnknown = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the server
// binary by linker flags. It is printed at startup and its version doubles as
// the API version when none is configured.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values become
// [BuildInfoUnknown].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

func orUnknown(v string) string {
	if v == "" {
		return BuildInfoUnknown
	}
	return v
}

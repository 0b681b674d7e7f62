// Package update checks whether a newer release-helper has been published.
package update

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Owner and Repo locate the release-helper releases
const (
	Owner = "wahlandcase"
	Repo  = "release-helper"
)

// Release is a published release newer than the running binary
type Release struct {
	TagName string
	URL     string
}

// Releases looks up the newest published release of a repository
type Releases interface {
	LatestRelease(ctx context.Context, owner, repo string) (tag, htmlURL string, err error)
}

// Check returns the latest release if it is newer than currentVersion, nil otherwise
func Check(ctx context.Context, releases Releases, currentVersion string) (*Release, error) {
	tag, url, err := releases.LatestRelease(ctx, Owner, Repo)
	if err != nil {
		return nil, fmt.Errorf("checking for updates: %w", err)
	}
	if tag == "" {
		return nil, nil
	}

	latest := canonical(tag)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("checking for updates: latest release tag %q is not a version", tag)
	}

	// "dev" builds are always older than any release
	current := canonical(currentVersion)
	if currentVersion == "dev" || !semver.IsValid(current) || semver.Compare(latest, current) > 0 {
		return &Release{TagName: tag, URL: url}, nil
	}
	return nil, nil
}

// canonical strips tag prefixes like "release-helper/" and ensures a leading "v"
func canonical(v string) string {
	v = strings.TrimPrefix(v, Repo+"/")
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// VersionDisplay returns a tag as shown to users, without prefixes
func VersionDisplay(tag string) string {
	return strings.TrimPrefix(canonical(tag), "v")
}

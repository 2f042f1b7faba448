// Package version compares bleperm build versions and checks them against
// the semver constraint a project file may pin.
package version

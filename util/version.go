package util

import (
	"github.com/hashicorp/go-version"
)

// BuildrootVersion is the version of this tool.
var BuildrootVersion = version.Must(version.NewVersion("1.0.0"))

// VersionTriplet returns the major, minor and patch components of BuildrootVersion.
func VersionTriplet() [3]uint {
	segments := BuildrootVersion.Segments()
	result := [3]uint{}
	for i := 0; i < len(result) && i < len(segments); i++ {
		result[i] = uint(segments[i])
	}
	return result
}

package domain

import "fmt"

// Version identifies one of the independent task collections exposed by the API.
type Version string

// Supported API versions.
const (
	VersionV1 Version = "v1"
	VersionV2 Version = "v2"
)

// Versions lists every supported API version in mount order.
var Versions = []Version{VersionV1, VersionV2}

// BasePath returns the URL prefix the version is mounted under, e.g. "/apiv1".
func (v Version) BasePath() string {
	return "/api" + string(v)
}

// Valid reports whether v is a supported version.
func (v Version) Valid() bool {
	switch v {
	case VersionV1, VersionV2:
		return true
	}
	return false
}

// SeedTasks returns the tasks a version's collection starts with.
// Each call returns fresh copies.
func SeedTasks(v Version) ([]Task, error) {
	switch v {
	case VersionV1:
		return []Task{
			{ID: 1, Title: "Learn FastAPI", Description: "Understand the basics", Completed: false},
		}, nil
	case VersionV2:
		return []Task{
			{ID: 1, Title: "Upgrade API", Description: "Refactor to improve structure", Completed: false},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, string(v))
	}
}

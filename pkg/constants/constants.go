// Package constants holds the shared defaults of the stagehand pipeline:
// output locations, file permissions, timeouts, and time layouts.
package constants

import "time"

// DefaultHTTPTimeout bounds requests to the tag mapping API.
const DefaultHTTPTimeout = 15 * time.Second

// Unix permissions for everything stagehand creates.
const (
	DirPermissions  = 0755 // rwxr-xr-x
	FilePermissions = 0644 // rw-r--r--
)

// Default locations for generated files and the mapping cache.
const (
	DefaultConstituentsOutput = "output/CueBox_Constituents.csv"
	DefaultQAOutput           = "output/qa_constituents.csv"
	DefaultTagsOutput         = "output/CueBox_Tags.csv"
	DefaultMappingCache       = "cache/tag_mapping.json"
)

// Time layouts.
const (
	// TimestampLayout is written into generated CSV files.
	TimestampLayout = "2006-01-02 15:04:05"

	// TimeFormatLog is the console timestamp layout for logs redirected
	// to a file.
	TimeFormatLog = "2006-01-02 15:04:05.000"
)

// MaxSourceFiles is the number of input tables loaded concurrently.
const MaxSourceFiles = 3

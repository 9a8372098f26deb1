// Package constants provides shared constants used throughout the atlasmap
// codebase. This includes canonical layer names, grid dimensions, file
// permissions, and other values that should be consistent across the
// application.
package constants

// Canonical Natural Earth layer names, one per resolution tier.
const (
	// LowResLayer is the 1:110m admin-0 countries layer (low-res tier)
	LowResLayer = "ne_110m_admin_0_countries"

	// MediumResLayer is the 1:50m admin-0 countries layer (medium-res tier)
	MediumResLayer = "ne_50m_admin_0_countries"

	// HighResLayer is the 1:10m admin-0 countries layer (high-res tier)
	HighResLayer = "ne_10m_admin_0_countries"
)

// Grid constants describe the canonical coordinate space of an atlas.
// They are fixed properties of the output format, never derived from data.
const (
	// GridHeight is the canonical atlas height in degrees of latitude
	GridHeight = 180

	// GridWidth is the canonical atlas width in degrees of longitude
	GridWidth = 360
)

// Field constants for feature attribute access.
const (
	// AdminField is the feature attribute holding the display name
	AdminField = "ADMIN"

	// EntityKeyField is the feature attribute holding the 3-letter code
	EntityKeyField = "ADM0_A3"

	// EntityKeyLength is the exact length of a real entity key;
	// synthetic IDs are distinguishable from entity keys by length alone
	EntityKeyLength = 3
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

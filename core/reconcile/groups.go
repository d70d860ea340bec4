package reconcile

import (
	"versync/core/registry"
	"versync/core/version"
)

// Record group names as they appear in plans, reports and logs.
const (
	GroupCatalog   = "catalog"
	GroupUninstall = "uninstall"
)

// Field names used by the packaging convention.
const (
	FieldName           = "Name"
	FieldVersion        = "Version"
	FieldDisplayName    = "DisplayName"
	FieldDisplayVersion = "DisplayVersion"
	FieldVersionMajor   = "VersionMajor"
	FieldVersionMinor   = "VersionMinor"
)

// Config holds the store-specific locations of the two record groups.
// The parent paths come from the deployment, not from versync; the
// defaults match a standard Windows style layout.
type Config struct {
	// CatalogPath is the parent path of the installer catalog records.
	CatalogPath string `mapstructure:"catalog_path" default:"HKLM/Software/Classes/Installer/Products"`
	// UninstallPath is the parent path of the uninstall records.
	UninstallPath string `mapstructure:"uninstall_path" default:"HKLM/Software/Microsoft/Windows/CurrentVersion/Uninstall"`
	// StrictMatch makes lookups fail when the prefix matches more than
	// one record instead of taking the first.
	StrictMatch bool `mapstructure:"strict_match" default:"false"`
	// Store selects the record backing (db, memory).
	Store string `mapstructure:"store" default:"db"`
}

const (
	StoreDB     = "db"
	StoreMemory = "memory"
)

// IsValidStore checks if the configured store backing is valid.
func (c Config) IsValidStore() bool {
	switch c.Store {
	case StoreDB, StoreMemory:
		return true
	default:
		return false
	}
}

// DesiredGroups computes the full desired state for a product: both record
// groups with every field value derived from the display name and the
// packed version. The uninstall group's DisplayVersion deliberately holds
// the decoded form of the packed version, not the raw version string, so
// it reproduces the legacy installer's output byte for byte.
func DesiredGroups(cfg Config, prefix, displayName string, encoded uint32) []Group {
	major, minor, _ := version.Lanes(encoded)

	return []Group{
		{
			Name: GroupCatalog,
			Selector: registry.Selector{
				Parent:     cfg.CatalogPath,
				MatchField: FieldName,
				Prefix:     prefix,
				Unique:     cfg.StrictMatch,
			},
			Fields: []Field{
				{Name: FieldName, Value: displayName},
				{Name: FieldVersion, Value: int64(encoded)},
			},
		},
		{
			Name: GroupUninstall,
			Selector: registry.Selector{
				Parent:     cfg.UninstallPath,
				MatchField: FieldDisplayName,
				Prefix:     prefix,
				Unique:     cfg.StrictMatch,
			},
			Fields: []Field{
				{Name: FieldDisplayName, Value: displayName},
				{Name: FieldDisplayVersion, Value: version.Decode(encoded)},
				{Name: FieldVersion, Value: int64(encoded)},
				{Name: FieldVersionMajor, Value: int64(major)},
				{Name: FieldVersionMinor, Value: int64(minor)},
			},
		},
	}
}

package install

// Config identifies the managed product and where its archive lives.
type Config struct {
	// BaseName is the product's display name without a version suffix.
	BaseName string `mapstructure:"base_name" default:"Widget"`
	// MatchPrefix is the prefix used to locate the product's records.
	// Empty means BaseName.
	MatchPrefix string `mapstructure:"match_prefix" default:""`
	// ArchivePath is a local product archive. Used when ArchiveObject is
	// empty.
	ArchivePath string `mapstructure:"archive_path" default:""`
	// ArchiveObject is the release bucket key of the product archive.
	// Takes precedence over ArchivePath.
	ArchiveObject string `mapstructure:"archive_object" default:""`
	// ManifestEntry is the archive entry glob naming the manifest.
	ManifestEntry string `mapstructure:"manifest_entry" default:"META-INF/MANIFEST.MF"`
	// VersionField is the manifest key carrying the true version.
	VersionField string `mapstructure:"version_field" default:"Jenkins-Version"`
}

// Prefix returns the record match prefix, falling back to BaseName.
func (c Config) Prefix() string {
	if c.MatchPrefix != "" {
		return c.MatchPrefix
	}
	return c.BaseName
}

// DisplayName joins the base name and the raw version string into the
// value stored in the catalog Name and uninstall DisplayName fields.
func (c Config) DisplayName(rawVersion string) string {
	return c.BaseName + " " + rawVersion
}

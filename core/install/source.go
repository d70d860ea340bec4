package install

import (
	"context"
	"errors"
	"fmt"

	"versync/core/archive"
	"versync/core/manifest"
	"versync/core/storage"
)

// ErrNoSource reports that the configuration names no archive location.
var ErrNoSource = errors.New("no archive source configured")

// Source yields the manifest bytes of the product archive.
type Source interface {
	Manifest(ctx context.Context) ([]byte, error)
}

// FileSource reads the archive from the local filesystem.
type FileSource struct {
	Path  string
	Entry string
}

func (s FileSource) Manifest(context.Context) ([]byte, error) {
	return archive.ExtractEntry(s.Path, s.Entry)
}

// ObjectSource reads the archive from the release bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
	Entry  string
}

func (s ObjectSource) Manifest(ctx context.Context) ([]byte, error) {
	return archive.ExtractEntryFromObject(ctx, s.Client, s.Bucket, s.Object, s.Entry)
}

// NewSource picks the archive source from the configuration. An object key
// wins over a local path; client may be nil when only a path is set.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch {
	case cfg.ArchiveObject != "":
		if client == nil {
			return nil, fmt.Errorf("archive object %s configured without storage", cfg.ArchiveObject)
		}
		return ObjectSource{Client: client, Bucket: bucket, Object: cfg.ArchiveObject, Entry: cfg.ManifestEntry}, nil
	case cfg.ArchivePath != "":
		return FileSource{Path: cfg.ArchivePath, Entry: cfg.ManifestEntry}, nil
	default:
		return nil, ErrNoSource
	}
}

// DiscoverVersion extracts the raw version string from the source's
// manifest. The value is returned untouched; parsing and encoding happen
// in core/version.
func DiscoverVersion(ctx context.Context, src Source, field string) (string, error) {
	data, err := src.Manifest(ctx)
	if err != nil {
		return "", err
	}

	raw, err := manifest.ExtractField(data, field)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", fmt.Errorf("%w: %s is empty", manifest.ErrNotFound, field)
	}
	return raw, nil
}

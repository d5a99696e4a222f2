package storage

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Scheme prefixes media paths served from object storage.
const Scheme = "s3"

// Location is a bucket and key prefix parsed from s3://bucket/prefix.
type Location struct {
	Bucket string
	Prefix string
}

// IsURL reports whether raw names an object-storage location.
func IsURL(raw string) bool {
	return strings.HasPrefix(raw, Scheme+"://")
}

// ParseLocation parses an s3://bucket/prefix URL. An empty bucket, as in
// s3:///prefix, falls back to defaultBucket.
func ParseLocation(raw, defaultBucket string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse storage location %q: %w", raw, err)
	}
	bucket := u.Host
	if bucket == "" {
		bucket = defaultBucket
	}
	if u.Scheme != Scheme || bucket == "" {
		return Location{}, fmt.Errorf("storage location %q must look like s3://bucket/prefix", raw)
	}
	return Location{Bucket: bucket, Prefix: strings.Trim(u.Path, "/")}, nil
}

// Key joins name onto the location prefix.
func (l Location) Key(name string) string {
	return strings.TrimPrefix(path.Join(l.Prefix, path.Clean("/"+name)), "/")
}

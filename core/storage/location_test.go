package storage_test

import (
	"testing"

	"appserve/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		bucket  string
		want    storage.Location
		wantErr bool
	}{
		{"BucketOnly", "s3://media", "", storage.Location{Bucket: "media"}, false},
		{"WithPrefix", "s3://media/admin/static/", "", storage.Location{Bucket: "media", Prefix: "admin/static"}, false},
		{"WrongScheme", "https://media/admin", "assets", storage.Location{}, true},
		{"NoBucket", "s3:///admin", "", storage.Location{}, true},
		{"DefaultBucket", "s3:///admin", "assets", storage.Location{Bucket: "assets", Prefix: "admin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.ParseLocation(tt.raw, tt.bucket)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocation_Key(t *testing.T) {
	loc := storage.Location{Bucket: "media", Prefix: "admin"}

	assert.Equal(t, "admin/css/base.css", loc.Key("css/base.css"))
	assert.Equal(t, "admin/secret", loc.Key("../../secret"))
	assert.Equal(t, "css/base.css", storage.Location{Bucket: "media"}.Key("/css/base.css"))
}

func TestIsURL(t *testing.T) {
	assert.True(t, storage.IsURL("s3://media"))
	assert.False(t, storage.IsURL("/srv/media"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlobURL(t *testing.T) {
	for in, want := range map[string]bool{
		"gs://bucket":                  true,
		"gs://bucket/readmeq":          true,
		"s3://bucket?region=eu-west-1": true,
		"azblob://container":           true,
		"mem://":                       true,
		"file:///var/lib/readmeq":      true,
		"gs://":                        false,
		"http://example.com":           false,
		"/var/lib/readmeq":             false,
		".readmeqBackups":              false,
		"":                             false,
	} {
		assert.Equal(t, want, IsBlobURL(in), in)
	}
}

func TestBlobProvider(t *testing.T) {
	assert.Equal(t, "Google Cloud Storage", BlobProvider("gs://bucket"))
	assert.Equal(t, "AWS S3", BlobProvider("s3://bucket"))
	assert.Equal(t, "unknown", BlobProvider("/tmp"))
}

package utils

import (
	"net/url"
	"slices"
)

// BlobSchemes lists the bucket URL schemes accepted as backups root
var BlobSchemes = []string{"gs", "s3", "azblob", "mem", "file"}

// IsBlobURL reports whether str is a bucket URL rather than a local path
func IsBlobURL(str string) bool {
	u, err := url.Parse(str)
	if err != nil || u.Scheme == "" {
		return false
	}
	if !slices.Contains(BlobSchemes, u.Scheme) {
		return false
	}
	return u.Host != "" || u.Scheme == "mem" || u.Scheme == "file"
}

// BlobProvider returns a human-readable provider name for a bucket URL
func BlobProvider(str string) string {
	u, err := url.Parse(str)
	if err != nil {
		return "unknown"
	}
	switch u.Scheme {
	case "gs":
		return "Google Cloud Storage"
	case "s3":
		return "AWS S3"
	case "azblob":
		return "Azure Blob Storage"
	case "mem":
		return "in-memory"
	case "file":
		return "local blob directory"
	default:
		return "unknown"
	}
}

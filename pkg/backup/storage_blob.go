package backup

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers accepted as backups root
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStorage implements Storage using gocloud.dev/blob.
// This supports GCS, S3, Azure, and other cloud storage providers.
type BlobStorage struct {
	bucket *blob.Bucket
	base   string
	prefix string
	owned  bool
}

// NewBlobStorage opens bucketURL, e.g. "gs://bucket-name", as backup storage.
// prefix is an optional path prefix for all keys.
func NewBlobStorage(ctx context.Context, bucketURL, prefix string) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	s := NewBlobStorageFromBucket(bucket, prefix)
	s.base = bucketBase(bucketURL)
	s.owned = true
	return s, nil
}

// NewBlobStorageFromBucket creates a new blob-backed storage from an existing bucket.
// The bucket stays owned by the caller and is not closed by Close.
func NewBlobStorageFromBucket(bucket *blob.Bucket, prefix string) *BlobStorage {
	// Normalize prefix: ensure trailing slash if non-empty
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}
	return &BlobStorage{
		bucket: bucket,
		prefix: prefix,
	}
}

func (b *BlobStorage) fullKey(key string) string {
	return b.prefix + strings.TrimPrefix(key, "/")
}

func (b *BlobStorage) Write(ctx context.Context, key string, data []byte) error {
	return b.bucket.WriteAll(ctx, b.fullKey(key), data, nil)
}

func (b *BlobStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := b.bucket.ReadAll(ctx, b.fullKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// List returns the object names directly below dir.
// Buckets have no directories, so a missing dir yields an empty list.
func (b *BlobStorage) List(ctx context.Context, dir string) ([]string, error) {
	prefix := b.fullKey(dir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	iter := b.bucket.List(&blob.ListOptions{
		Prefix:    prefix,
		Delimiter: "/",
	})

	var names []string
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if obj.IsDir {
			continue
		}
		names = append(names, path.Base(obj.Key))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (b *BlobStorage) Location(key string) string {
	if b.base == "" {
		return b.fullKey(key)
	}
	return b.base + "/" + b.fullKey(key)
}

func (b *BlobStorage) Close() error {
	if !b.owned {
		return nil
	}
	return b.bucket.Close()
}

// bucketBase strips the query and trailing slash from a bucket URL.
func bucketBase(bucketURL string) string {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return strings.TrimSuffix(bucketURL, "/")
	}
	u.RawQuery = ""
	return strings.TrimSuffix(u.String(), "/")
}

package backup

import (
	"context"
	"net/url"
	"strings"

	"github.com/foomo/readmeq/pkg/utils"
)

// Storage defines the contract for backup entry persistence backends.
// Keys are slash separated and relative to the backups root.
type Storage interface {
	// Write stores data with the given key, creating parent directories as needed.
	// An existing entry with the same key is overwritten.
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves data for the given key.
	// Returns os.ErrNotExist if the key does not exist.
	Read(ctx context.Context, key string) ([]byte, error)

	// List returns the names of the entries directly below dir, sorted alphabetically descending.
	List(ctx context.Context, dir string) ([]string, error)

	// Location returns the user facing address of key, e.g. an absolute file path.
	Location(key string) string

	// Close releases any resources held by the storage backend.
	Close() error
}

// StorageOpener opens the storage for a backups root.
type StorageOpener func(ctx context.Context, root string) (Storage, error)

// OpenStorage opens a BlobStorage when root is a bucket URL and a FilesystemStorage otherwise.
// Path segments of a bucket URL such as "gs://bucket/backups" become the key prefix.
func OpenStorage(ctx context.Context, root string) (Storage, error) {
	if !utils.IsBlobURL(root) {
		return NewFilesystemStorage(root)
	}
	u, err := url.Parse(root)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "mem", "file":
		return NewBlobStorage(ctx, root, "")
	}
	prefix := strings.Trim(u.Path, "/")
	u.Path = ""
	return NewBlobStorage(ctx, u.String(), prefix)
}

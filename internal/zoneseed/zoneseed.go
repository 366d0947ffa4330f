// Package zoneseed imports the zone document served by /api/public/zones.
// Documents come from the local file system or S3, may be gzip-compressed,
// and must be a single JSON object.
package zoneseed

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotObject is returned when a document is valid JSON but not an object.
var ErrNotObject = errors.New("zone document must be a JSON object")

// Loader defines the interface for loading zone documents.
type Loader interface {
	// Load reads the document at path and returns it as raw JSON.
	Load(ctx context.Context, path string) (json.RawMessage, error)
}

// Store persists a zone document under an id.
type Store interface {
	Upsert(ctx context.Context, id string, doc json.RawMessage) error
}

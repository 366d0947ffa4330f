package zoneseed

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// maxDocumentSize bounds how much decompressed data a single document may hold.
const maxDocumentSize = 64 << 20

// fileLoader implements Loader for documents on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based zone loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "zone-loader").Logger(),
	}
}

// Load reads a zone document from disk. Paths ending in .gz are gunzipped.
func (l *fileLoader) Load(ctx context.Context, path string) (json.RawMessage, error) {
	l.logger.Info().Str("file", path).Msg("loading zone file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open zone file")
		return nil, fmt.Errorf("failed to open zone file %s: %w", path, err)
	}
	defer file.Close()

	doc, err := decodeDocument(file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read zone file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("bytes", len(doc)).
		Msg("zone file loaded successfully")

	return doc, nil
}

// decodeDocument reads r (gunzipping when name ends in .gz), checks that the
// content is one JSON object and returns it compacted.
func decodeDocument(r io.Reader, name string) (json.RawMessage, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("zone document %s exceeds %d bytes", name, maxDocumentSize)
	}

	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("zone document %s is not valid JSON", name)
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%s: %w", name, ErrNotObject)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, fmt.Errorf("failed to compact %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

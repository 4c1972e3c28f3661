package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.ContentReader = (*Reader)(nil)

var utf8BOM = []byte("\xef\xbb\xbf")

// Reader loads message files into memory.
type Reader struct{}

// NewReader creates a new filesystem reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the content of path. The file is closed before returning.
// Bytes that are not valid UTF-8 are decoded as Windows-1252.
func (r *Reader) Read(ctx context.Context, path string) (domain.RawContent, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawContent{}, err
	}

	data, err := readAll(path)
	if err != nil {
		return domain.RawContent{}, err
	}

	return domain.RawContent{Path: path, Text: decode(data)}, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrFileUnreadable, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrFileUnreadable, err)
	}
	return data, nil
}

// decode keeps valid UTF-8 sequences and maps each invalid byte through
// Windows-1252, so a stray 8-bit byte does not change the rest of the file.
func decode(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			r = charmap.Windows1252.DecodeByte(data[0])
		}
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}

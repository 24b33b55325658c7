package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"briefly/internal/models"

	log "github.com/sirupsen/logrus"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileMeta holds metadata about an input file.
type FileMeta struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// IsLikelyBinary reports whether the first bytes of the file contain a NUL.
func IsLikelyBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, maxBinaryCheckBytes)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return bytes.Contains(buffer[:n], []byte{0}), nil
}

// CleanText strips a leading UTF-8 BOM and replaces invalid UTF-8 sequences.
// Valid text without a BOM is returned unchanged.
func CleanText(data []byte, src string) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		log.Warnf("%s is not valid UTF-8, replacing invalid bytes", src)
		data = bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	}
	return string(data)
}

// ReadInput loads a text file to be used as tool input.
func ReadInput(path string) (string, error) {
	binary, err := IsLikelyBinary(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	if binary {
		return "", fmt.Errorf("failed to read file '%s': %w", path, models.ErrBinaryInput)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	log.Debugf("Read %d bytes from %s", len(data), path)
	return CleanText(data, path), nil
}

// WriteOutput writes text to path verbatim, replacing any existing file.
func WriteOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	log.Debugf("Wrote %d bytes to %s", len(text), path)
	return nil
}

/*
ExtractFileMeta extracts metadata from a given file path.

Returns FileMeta with Name, Path, Size, and ModTime.
*/
func ExtractFileMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}
	return FileMeta{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

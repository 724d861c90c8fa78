package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tinyrsa/internal/cryptoerr"
)

const (
	secretFileMode = 0o600
	publicFileMode = 0o644
)

// readJSON reads path into out.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrMalformedKeyFile, err)
	}
	return nil
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(b, '\n'), mode)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// BlobFileStore reads and writes the plaintext and ciphertext files.
type BlobFileStore struct{}

// NewBlobFileStore returns a BlobFileStore.
func NewBlobFileStore() *BlobFileStore { return &BlobFileStore{} }

// ReadLimited reads the whole file at path, failing with
// cryptoerr.ErrInputTooLarge when it holds more than max bytes.
func (BlobFileStore) ReadLimited(path string, max int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tooLarge := func(size int64) error {
		return fmt.Errorf("%s: %d bytes exceeds the limit of %d: %w", path, size, max, cryptoerr.ErrInputTooLarge)
	}
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() && fi.Size() > int64(max) {
		return nil, tooLarge(fi.Size())
	}
	// Stat can lie for pipes and growing files; bound the read as well.
	b, err := io.ReadAll(io.LimitReader(f, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if len(b) > max {
		return nil, tooLarge(int64(len(b)))
	}
	return b, nil
}

// WriteBytes atomically replaces path with b.
func (BlobFileStore) WriteBytes(path string, b []byte) error {
	return writeFile(path, b, publicFileMode)
}

// Package kifile implements the filesystem boundary shared by every
// document kind: whole-file reads with optional alternate text
// encodings, and atomic whole-file writes that never leave a
// destination half overwritten.
package kifile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kiforge/kicad-sexp/debug"
	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrNoPath is returned by document Save methods invoked with an empty
// path on a document that was never loaded from or saved to a file.
var ErrNoPath = errors.New("kifile: no file path")

type config struct {
	encoding      string
	skipUnchanged bool
}

type Option func(*config)

// Encoding selects an alternate text encoding by IANA name (for
// example "ISO-8859-1"). The default is UTF-8, untransformed.
func Encoding(name string) Option {
	return func(c *config) { c.encoding = name }
}

// SkipUnchanged makes WriteFile leave the destination alone when its
// current content already matches, so untouched documents do not get
// fresh mtimes.
func SkipUnchanged() Option {
	return func(c *config) { c.skipUnchanged = true }
}

// ReadFile reads the whole file, decoding it to UTF-8 when an
// alternate encoding was requested.
func ReadFile(path string, opts ...Option) ([]byte, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if cfg.encoding == "" {
		return d, nil
	}
	enc, err := lookupEncoding(cfg.encoding)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), d)
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", path, cfg.encoding, err)
	}
	return out, nil
}

// WriteFile writes data through a temporary file in the destination
// directory and renames it into place, so a failed save never corrupts
// a previously saved file.
func WriteFile(path string, data []byte, opts ...Option) error {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.encoding != "" {
		enc, err := lookupEncoding(cfg.encoding)
		if err != nil {
			return err
		}
		out, _, err := transform.Bytes(enc.NewEncoder(), data)
		if err != nil {
			return fmt.Errorf("encode for %s as %s: %w", path, cfg.encoding, err)
		}
		data = out
	}
	if cfg.skipUnchanged && unchanged(path, data) {
		if debug.File() {
			debug.Logf("kifile: %s unchanged, skipping write\n", path)
		}
		return nil
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Digest returns the blake3 digest of data, the fingerprint used for
// unchanged-content detection.
func Digest(data []byte) [32]byte {
	return blake3.Sum256(data)
}

func unchanged(path string, data []byte) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	want := Digest(data)
	return bytes.Equal(h.Sum(nil), want[:])
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}

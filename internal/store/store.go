// Package store persists drawing surfaces as JSON documents.
package store

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"InkBoard/internal/state"
)

// FormatVersion is written into every document.
const FormatVersion = 1

// ErrNoData is returned when a document holds no surface.
var ErrNoData = errors.New("no data available")

type document struct {
	Version int                `json:"version"`
	Surface *state.SurfaceData `json:"surface"`
}

// Save writes s to w.
func Save(w io.Writer, s *state.Surface) error {
	d := s.Data()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Version: FormatVersion, Surface: &d}); err != nil {
		return errors.Wrap(err, "store: encode surface")
	}
	return nil
}

// Load reads a surface written by Save.
func Load(r io.Reader) (*state.Surface, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "store: decode surface")
	}
	if doc.Surface == nil {
		return nil, ErrNoData
	}
	if doc.Version > FormatVersion {
		return nil, errors.Errorf("store: unsupported document version %d", doc.Version)
	}
	return state.NewSurfaceFromData(*doc.Surface), nil
}

// Marshal returns the document bytes for s.
func Marshal(s *state.Surface) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// File is a surface document on disk.
type File struct {
	Path   string
	Logger zerolog.Logger
}

func NewFile(path string) *File {
	return &File{Path: path, Logger: zerolog.Nop()}
}

// Save writes s atomically by way of a temporary file.
func (f *File) Save(s *state.Surface) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return errors.Wrap(err, "store: create document directory")
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".inkboard-*")
	if err != nil {
		return errors.Wrap(err, "store: create temporary file")
	}
	defer os.Remove(tmp.Name())

	if err := Save(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "store: close temporary file")
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return errors.Wrap(err, "store: replace document")
	}
	f.Logger.Debug().Str("Path", f.Path).Msg("[STORE] surface saved")
	return nil
}

// Load reads the document from disk.
func (f *File) Load() (*state.Surface, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open document")
	}
	defer fh.Close()
	return Load(fh)
}

// LoadOrEmpty never fails: a missing or corrupt document yields a fresh
// surface. The error is still returned so the caller can report it; a
// document that does not exist yet is not an error.
func (f *File) LoadOrEmpty() (*state.Surface, error) {
	s, err := f.Load()
	if err == nil {
		f.Logger.Debug().Str("Path", f.Path).Msg("[STORE] surface loaded")
		return s, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return state.NewSurface(), nil
	}
	f.Logger.Warn().Err(err).Str("Path", f.Path).Msg("[STORE] falling back to an empty surface")
	return state.NewSurface(), err
}

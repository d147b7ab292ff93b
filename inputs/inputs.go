// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package inputs finds and loads puzzle input files.
package inputs

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/crypto/blake2b"
)

var (
	// input files have names that match the pattern day_NAME.txt.
	rxInputFile = regexp.MustCompile(`^day_([a-z]+)\.txt$`)
)

// File is an input file found in a directory.
type File struct {
	Name string // the spelled-out day taken from the file name, e.g. "five"
	Path string // the path to the input file
}

// Collect returns the input files in path, sorted by file name.
// Files that don't match day_NAME.txt are ignored.
func Collect(fs afero.Fs, path string) ([]*File, error) {
	entries, err := afero.ReadDir(fs, path)
	if err != nil {
		return nil, err
	}
	var files []*File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := rxInputFile.FindStringSubmatch(entry.Name())
		// length of matches is 2 because it includes the whole string in the slice
		if len(matches) != 2 {
			continue
		}
		files = append(files, &File{
			Name: matches[1],
			Path: filepath.Join(path, entry.Name()),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// Input is a loaded input file.
type Input struct {
	Path   string
	Lines  []string
	Digest string // hex BLAKE2b-256 of the normalized text
}

// Load reads the file and splits it into lines.
// A final end-of-line does not produce an extra empty line.
func Load(fs afero.Fs, path string, options ...Option) (*Input, error) {
	cfg := &Config{autoEOL: true}
	if err := WithLogger(nil)(cfg); err != nil {
		return nil, err
	}
	for _, option := range options {
		if err := option(cfg); err != nil {
			return nil, err
		}
	}

	fd, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.logger.Debug("inputs: read", slog.String("path", path), slog.Int("bytes", len(data)))

	data = normalize(data, cfg.autoEOL, cfg.stripCR, cfg.logger)
	sum := blake2b.Sum256(data)

	return &Input{
		Path:   path,
		Lines:  Lines(data),
		Digest: hex.EncodeToString(sum[:]),
	}, nil
}

// Lines splits text on LF. A final LF does not produce an extra empty line.
func Lines(data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func normalize(data []byte, autoEOL, stripCR bool, logger *slog.Logger) []byte {
	if autoEOL {
		logger.Debug("inputs: auto-eol: replacing CR+LF and CR with LF")
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
		data = bytes.ReplaceAll(data, []byte{'\r'}, []byte{'\n'})
	} else if stripCR {
		logger.Debug("inputs: strip-cr: replacing CR+LF with LF")
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
	}
	return data
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hints loads the externally supplied instruction files the
// pipeline consumes: structure hints, link maps, and video metadata.
// Hints may be JSON or YAML, selected by file extension; link maps and
// info.json are JSON.
package hints

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// LoadHints reads a structure-hints file. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func LoadHints(path string) (types.StructureHints, error) {
	var hints types.StructureHints

	data, err := os.ReadFile(path)
	if err != nil {
		return hints, fmt.Errorf("reading hints file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &hints); err != nil {
			return hints, fmt.Errorf("parsing hints YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &hints); err != nil {
			return hints, fmt.Errorf("parsing hints JSON %s: %w", path, err)
		}
	}

	return hints, nil
}

// LoadLinkMap reads a link-mapping JSON file: an ordered array of
// {"phrase": ..., "url": ...} objects.
func LoadLinkMap(path string) ([]types.LinkEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading link map: %w", err)
	}

	var entries []types.LinkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing link map %s: %w", path, err)
	}
	return entries, nil
}

// LoadVideoInfo reads a downloader info.json. Fields beyond id, title,
// description, and chapters are ignored.
func LoadVideoInfo(path string) (types.VideoInfo, error) {
	var info types.VideoInfo

	data, err := os.ReadFile(path)
	if err != nil {
		return info, fmt.Errorf("reading info.json: %w", err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("parsing info.json %s: %w", path, err)
	}
	return info, nil
}

// WriteLinksJSON writes description links as indented JSON with a
// trailing newline, the format the enrich stage's link map loader and
// downstream hint generators consume.
func WriteLinksJSON(w io.Writer, links []types.DescriptionLink) error {
	if links == nil {
		links = []types.DescriptionLink{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling links JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

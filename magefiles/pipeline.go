//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Transcript runs the convert and structure stages end to end over a
// local captions file. It expects VTT (captions path) and HINTS (hints
// path) in the environment, with optional INFO (info.json) and OUT
// (final output path, default transcript.md).
func Transcript() error {
	mg.Deps(Build)

	vttPath := os.Getenv("VTT")
	hintsPath := os.Getenv("HINTS")
	if vttPath == "" || hintsPath == "" {
		return fmt.Errorf("set VTT and HINTS in the environment, e.g. VTT=talk.vtt HINTS=hints.json mage transcript")
	}
	outPath := os.Getenv("OUT")
	if outPath == "" {
		outPath = "transcript.md"
	}

	bin := filepath.Join(binDir, binName)
	intermediate := outPath + ".tmp"

	convertArgs := []string{"convert", vttPath, "-o", intermediate}
	structureArgs := []string{"structure", intermediate, "--hints", hintsPath, "-o", outPath}
	if info := os.Getenv("INFO"); info != "" {
		convertArgs = append(convertArgs, "--info-json", info)
		structureArgs = append(structureArgs, "--info-json", info)
	}

	if err := sh.RunV(bin, convertArgs...); err != nil {
		return fmt.Errorf("convert stage: %w", err)
	}
	if err := sh.RunV(bin, structureArgs...); err != nil {
		return fmt.Errorf("structure stage: %w", err)
	}
	fmt.Printf("Pipeline complete: %s\n", outPath)
	return nil
}

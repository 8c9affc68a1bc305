// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Command peeler unpacks a legacy Macintosh archive or encoding
// (BinHex, MacBinary, Compact Pro, or StuffIt) and writes every extracted
// file's data fork to an output directory, alongside an AppleDouble ._
// sidecar wherever a resource fork or nonzero Finder metadata needs to be
// preserved.
package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/pappadf/peeler/internal/appledouble"
	"github.com/pappadf/peeler/internal/entry"
	"github.com/pappadf/peeler/internal/peel"
	"github.com/pappadf/peeler/internal/peelerr"
)

func usage() {
	pflag.CommandLine.SetOutput(os.Stderr)
	os.Stderr.WriteString("usage: peeler [flags] <archive> [<output-dir>]\n\n")
	pflag.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("peeler", pflag.ContinueOnError)
	fs.Usage = usage
	verbose := fs.Bool("verbose", false, "raise log level to debug")
	noXattr := fs.Bool("no-xattr", false, "skip Darwin Finder-info/resource-fork xattr enrichment")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		usage()
		return 1
	}
	archivePath := rest[0]
	outputDir := "."
	if len(rest) == 2 {
		outputDir = rest[1]
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Error().Err(err).Str("dir", outputDir).Msg("cannot create output directory")
		return 1
	}

	files, warnings, err := peel.PeelPath(archivePath)
	if err != nil {
		logPeelFailure(archivePath, err)
		return 1
	}

	for _, w := range warnings {
		log.Warn().Err(w.Err).Str("file", w.Name).Str("archive", archivePath).
			Msg("recursive sub-peel failed, keeping the outer wrapper as-is")
	}

	failures := 0
	for _, f := range files {
		if !writeDataFork(outputDir, f) {
			failures++
		}
		if appledouble.NeedsSidecar(f.Metadata, f.Rsrc) {
			if !writeSidecar(outputDir, f, *noXattr) {
				failures++
			}
		}
	}

	if failures > 0 {
		return 1
	}
	return 0
}

// logPeelFailure distinguishes a format decoder rejecting the input (a
// *peelerr.DecodeError, raised by Abort deep inside hqx/macbinary/cpt/sit)
// from an I/O failure reading the archive itself, so the log line names
// which one happened.
func logPeelFailure(archivePath string, err error) {
	var de *peelerr.DecodeError
	if errors.As(err, &de) {
		log.Error().Err(err).Str("archive", archivePath).Msg("archive format rejected")
		return
	}
	log.Error().Err(err).Str("archive", archivePath).Msg("cannot read archive")
}

func displayName(f entry.File) string {
	if f.Name == "" {
		return "unnamed"
	}
	return f.Name
}

func writeDataFork(outputDir string, f entry.File) bool {
	name := displayName(f)
	path := filepath.Join(outputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Error().Err(err).Str("file", name).Msg("cannot create parent directories")
		return false
	}
	if _, err := os.Stat(path); err == nil {
		log.Warn().Str("file", path).Msg("overwriting existing file")
	}
	if err := os.WriteFile(path, f.Data, 0644); err != nil {
		log.Error().Err(err).Str("file", name).Msg("cannot write data fork")
		return false
	}
	return true
}

// sidecarPath inserts "._" before the final path component, e.g.
// "dir/sub/file" -> "<outputDir>/dir/sub/._file".
func sidecarPath(outputDir, name string) string {
	dir, base := filepath.Split(name)
	return filepath.Join(outputDir, dir, "._"+base)
}

func writeSidecar(outputDir string, f entry.File, noXattr bool) bool {
	name := displayName(f)
	path := sidecarPath(outputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Error().Err(err).Str("file", name).Msg("cannot create parent directories for sidecar")
		return false
	}
	buf := appledouble.Write(f.Metadata, f.Rsrc)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		log.Error().Err(err).Str("file", name).Msg("cannot write AppleDouble sidecar")
		return false
	}

	if !noXattr {
		if err := setFinderXattrs(filepath.Join(outputDir, name), f.Metadata, f.Rsrc); err != nil {
			log.Debug().Err(err).Str("file", name).Msg("Finder-info xattr enrichment skipped")
		}
	}
	return true
}

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/document"
	"github.com/sonnes/texgen/manifest"
	"github.com/urfave/cli/v3"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write a source file as a .tex file",
		Description: `Converts the source file and writes <out>.tex. Unless --no-manifest
is set, the output directory's manifest.json is updated with the title,
class and packages of the generated file.`,
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output path without the .tex extension (default: source name)",
			},
			&cli.BoolFlag{
				Name:  "no-manifest",
				Usage: "Do not update manifest.json",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()
			src := cmd.String("file")

			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out == "" {
				out = strings.TrimSuffix(src, filepath.Ext(src))
			}
			out = strings.TrimSuffix(out, core.Extension)

			if err := doc.GenerateTex(out); err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			path := out + core.Extension
			log.Info("wrote document", "path", path, "packages", doc.Packages().Len())

			if cmd.Bool("no-manifest") {
				return nil
			}
			if err := updateManifest(path, src, doc); err != nil {
				return fmt.Errorf("manifest: %w", err)
			}
			return nil
		},
	}
}

// updateManifest records the generated file in the manifest next to it.
func updateManifest(path, src string, doc *document.Document) error {
	manifestPath := filepath.Join(filepath.Dir(path), manifest.FileName)

	m, err := manifest.ReadFile(manifestPath)
	if err != nil {
		return err
	}
	entry, err := manifest.NewEntry(doc, filepath.Base(path), src, time.Now().UTC())
	if err != nil {
		return err
	}
	for _, p := range m.Prune(filepath.Dir(path)) {
		log.Debug("dropped missing file from manifest", "path", p)
	}
	m.Upsert(entry)

	if err := m.WriteFile(manifestPath); err != nil {
		return err
	}
	log.Debug("updated manifest", "path", manifestPath, "entries", len(m.Entries))
	return nil
}

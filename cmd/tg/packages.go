package main

import (
	"context"
	"fmt"

	"github.com/sonnes/texgen/core"
	"github.com/urfave/cli/v3"
)

func packagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "packages",
		Usage: "Print the preamble packages a source file requires",
		Flags: inputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := newApp().readDocument(cmd)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if err := core.DumpPackages(w, doc); err != nil {
				return err
			}
			if doc.Packages().Len() > 0 {
				_, err = fmt.Fprintln(w)
			}
			return err
		},
	}
}

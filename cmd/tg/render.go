package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Convert a source file and print the result",
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: latex, terminal, json",
				Value: "latex",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			rnd, err := a.renderer(cmd.String("o"))
			if err != nil {
				return err
			}

			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}

			if err := rnd.Render(cmd.Root().Writer, doc); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}

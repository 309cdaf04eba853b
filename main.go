package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/shopaudit/internal/audit"
	"github.com/dtnitsch/shopaudit/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "shopaudit",
		Usage: "audit an e-commerce product's online presence",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen address (overrides config)",
					},
				},
			},
			{
				Name:   "audit",
				Usage:  "run one-shot or batch audits and print JSON",
				Action: audit.AuditAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "website URL to audit",
					},
					&cli.StringFlag{
						Name:  "asin",
						Usage: "optional Amazon ASIN for the listing-dependent categories",
					},
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated website URLs for a batch run",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 0,
						Usage: "concurrent workers for batch runs (0 = config value)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

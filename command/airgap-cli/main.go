// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "airgap-cli"
	app.Usage = "check and convert transactions for offline signing"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "validate",
			Usage:     "check a transaction file and show its digest",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction as JSON, hex or base58 `FILE`",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "pack",
			Usage:     "convert a transaction file to packed text",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction as JSON, hex or base58 `FILE`",
				},
				cli.BoolFlag{
					Name:  "hex, x",
					Usage: " output hex instead of base58",
				},
			},
			Action: runPack,
		},
		{
			Name:      "unpack",
			Usage:     "convert packed text to JSON",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "packed, p",
					Value: "",
					Usage: "+packed transaction `TEXT`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+packed transaction `FILE`",
				},
			},
			Action: runUnpack,
		},
		{
			Name:  "version",
			Usage: "display airgap-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

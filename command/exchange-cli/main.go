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

	"github.com/bitmark-inc/exchanged/chain"
)

type metadata struct {
	chain   *chain.ChildChain
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "exchange-cli"
	app.Usage = "build asset exchange transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "chain, c",
			Value: chain.Ignis.Name,
			Usage: " child chain `NAME`",
		},
		cli.StringFlag{
			Name:  "sender, s",
			Value: "",
			Usage: " sender `ACCOUNT`, attachment only if omitted",
		},
		cli.Uint64Flag{
			Name:  "timestamp, t",
			Value: 0,
			Usage: " transaction `TIMESTAMP`",
		},
		cli.UintFlag{
			Name:  "deadline, d",
			Value: 1440,
			Usage: " deadline in `MINUTES`",
		},
		cli.StringFlag{
			Name:  "fee, f",
			Value: "",
			Usage: " fee in whole coins `AMOUNT` [default baseline fee]",
		},
		cli.Uint64Flag{
			Name:  "phasing-finish",
			Value: 0,
			Usage: " phasing finish `HEIGHT`",
		},
	}

	quantityFlags := []cli.Flag{
		cli.Uint64Flag{
			Name:  "asset, a",
			Usage: "*asset `ID`",
		},
		cli.StringFlag{
			Name:  "quantity, q",
			Value: "",
			Usage: "*quantity in whole units `AMOUNT`",
		},
		cli.UintFlag{
			Name:  "decimals",
			Value: 0,
			Usage: " decimals of the asset `COUNT`",
		},
	}

	orderFlags := append(quantityFlags,
		cli.StringFlag{
			Name:  "price, p",
			Value: "",
			Usage: "*coins per whole unit `AMOUNT`",
		},
	)

	cancelFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "order, o",
			Value: "",
			Usage: "*full hash of the order placement `HEX`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "issue",
			Usage:     "issue a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, D",
					Value: "",
					Usage: " asset description `STRING`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*quantity in whole units `AMOUNT`",
				},
				cli.UintFlag{
					Name:  "decimals",
					Value: 0,
					Usage: " decimals of the asset `COUNT`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "transfer",
			Usage:     "transfer asset units to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: append(quantityFlags,
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ACCOUNT`",
				},
			),
			Action: runTransfer,
		},
		{
			Name:      "delete",
			Usage:     "destroy asset units held by the sender",
			ArgsUsage: "\n   (* = required)",
			Flags:     quantityFlags,
			Action:    runDelete,
		},
		{
			Name:      "increase",
			Usage:     "increase the supply of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     quantityFlags,
			Action:    runIncrease,
		},
		{
			Name:      "ask",
			Usage:     "place an ask order",
			ArgsUsage: "\n   (* = required)",
			Flags:     orderFlags,
			Action:    runAsk,
		},
		{
			Name:      "bid",
			Usage:     "place a bid order",
			ArgsUsage: "\n   (* = required)",
			Flags:     orderFlags,
			Action:    runBid,
		},
		{
			Name:      "cancel-ask",
			Usage:     "cancel an ask order",
			ArgsUsage: "\n   (* = required)",
			Flags:     cancelFlags,
			Action:    runCancelAsk,
		},
		{
			Name:      "cancel-bid",
			Usage:     "cancel a bid order",
			ArgsUsage: "\n   (* = required)",
			Flags:     cancelFlags,
			Action:    runCancelBid,
		},
		{
			Name:      "dividend",
			Usage:     "pay a dividend to the holders of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `ID`",
				},
				cli.UintFlag{
					Name:  "height",
					Usage: "*snapshot `HEIGHT`",
				},
				cli.StringFlag{
					Name:  "holding",
					Value: "coin",
					Usage: " paid in `HOLDING` coin, asset:ID or currency:ID",
				},
				cli.UintFlag{
					Name:  "holding-decimals",
					Value: 0,
					Usage: " decimals of an asset or currency holding `COUNT`",
				},
				cli.StringFlag{
					Name:  "amount",
					Value: "",
					Usage: "*paid per whole unit of the asset `AMOUNT`",
				},
			},
			Action: runDividend,
		},
		{
			Name:      "phasing-control",
			Usage:     "require approval for transactions of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "model, m",
					Value: "none",
					Usage: " voting `MODEL` none, account, coin, asset or currency",
				},
				cli.Int64Flag{
					Name:  "quorum",
					Usage: " votes required `COUNT`",
				},
				cli.Int64Flag{
					Name:  "min-balance",
					Usage: " minimum voter balance `AMOUNT`",
				},
				cli.UintFlag{
					Name:  "min-balance-model",
					Usage: " `MODEL` 0 none, 1 coin, 2 asset, 3 currency",
				},
				cli.Uint64Flag{
					Name:  "holding",
					Usage: " voting holding `ID`",
				},
				cli.StringSliceFlag{
					Name:  "whitelist, w",
					Usage: " voter `ACCOUNT`, repeat for more",
				},
			},
			Action: runPhasingControl,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transaction",
			ArgsUsage: "HEX",
			Action:    runDecode,
		},
		{
			Name:  "version",
			Usage: "display exchange-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		name := c.GlobalString("chain")
		childChain := chain.ChildChainByName(name)
		if nil == childChain {
			return fmt.Errorf("chain: %q is not a known child chain", name)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				chain:   childChain,
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exchanged/exchange"
)

// default number of history rows shown
const defaultCount = 20

// setup command handler
//
// commands that cannot access any internal database or states or
// the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "replay", "r", "submit", "s", "pending", "p",
		"asset", "a", "balance", "b", "orders", "o",
		"dividends", "d", "transfers", "t":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                         (h)  - display this message\n\n")
		fmt.Printf("  version                      (v)  - display version sting\n\n")

		fmt.Printf("  start                        (run) - just run the program, same as no arguments\n")
		fmt.Printf("                                       pending transactions expire while running\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                  (cfg) - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  replay FILE                  (r)  - apply the blocks of JSON transactions in FILE\n")
		fmt.Printf("  submit FILE                  (s)  - add the JSON transactions in FILE to the pool\n")
		fmt.Printf("  pending                      (p)  - list the pool\n")
		fmt.Printf("\n")

		fmt.Printf("  asset ID [COUNT]             (a)  - asset record and supply history\n")
		fmt.Printf("  balance ACCOUNT [HOLDING]    (b)  - balances and ledger entries of an account\n")
		fmt.Printf("                                      HOLDING is coin, asset:ID or currency:ID\n")
		fmt.Printf("  orders ASSET [COUNT]         (o)  - open ask and bid orders of an asset\n")
		fmt.Printf("  dividends ASSET [COUNT]      (d)  - dividends paid on an asset\n")
		fmt.Printf("  transfers ASSET|ACCOUNT [COUNT] (t) - transfer history\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)
	}

	// fallen through, so next stage
	return false
}

// configuration commands
//
// return:
//   true  if program should exit
//   false if program should continue
func processConfigCommand(arguments []string, options *Configuration) bool {

	if len(arguments) < 1 {
		return false
	}

	switch arguments[0] {
	case "config-test", "cfg":
		fmt.Printf("configuration:\n")
		err := printJson(os.Stdout, options)
		if nil != err {
			exitwithstatus.Message("print configuration error: %s", err)
		}
		return true

	default:
		return false
	}
}

// data commands
//
// return:
//   true  if program should exit
//   false if program should continue
func processDataCommand(log *logger.L, arguments []string, env *exchange.Environment, stores *exchange.Stores) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	var err error

	switch command {
	case "start", "run":
		return false // continue processing

	case "replay", "r":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name")
		}
		err = replay(log, arguments[0])

	case "submit", "s":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name")
		}
		err = submit(log, arguments[0])

	case "pending", "p":
		err = showPending()

	case "asset", "a":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing asset id")
		}
		err = showAsset(stores, arguments[0], countArgument(arguments))

	case "balance", "b":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account")
		}
		holdingText := "coin"
		if len(arguments) > 1 {
			holdingText = arguments[1]
		}
		err = showBalance(env, stores, arguments[0], holdingText)

	case "orders", "o":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing asset id")
		}
		err = showOrders(stores, arguments[0], countArgument(arguments))

	case "dividends", "d":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing asset id")
		}
		err = showDividends(env, stores, arguments[0], countArgument(arguments))

	case "transfers", "t":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing asset id or account")
		}
		err = showTransfers(stores, arguments[0], countArgument(arguments))

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	if nil != err {
		log.Errorf("%s error: %s", command, err)
		exitwithstatus.Message("%s error: %s", command, err)
	}
	return true
}

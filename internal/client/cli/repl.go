package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: ads, users, (n)ext, (p)rev, (v)erify, (r)eject, reload, show, dismiss, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SwitchTab(ctx context.Context, tab Tab) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Verify(ctx context.Context) error
	Reject(ctx context.Context) error
	Reload(ctx context.Context) error
	Show(ctx context.Context) error
	Dismiss(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a:
//
//	ads | events      open the events tab
//	users             open the users tab
//	next | n          next record
//	prev | p          previous record
//	verify | v        approve the current record
//	reject | r        reject the current record
//	reload            fetch the active tab again
//	show              print the current card
//	dismiss           close the current notice
//	help              list commands
//	exit | quit       leave the program
//
// The prompt is printed only when prompt is true, so piped input stays clean.
// Errors from handlers are ignored here; the App renders them itself.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, prompt bool) {
	for {
		if prompt {
			printlnFn(fmt.Sprintf("mod (%s)> ", statusFn()))
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "ads", "events":
			_ = a.SwitchTab(ctx, TabAds)

		case "users":
			_ = a.SwitchTab(ctx, TabUsers)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "v", "verify":
			_ = a.Verify(ctx)

		case "r", "reject":
			_ = a.Reject(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "show":
			_ = a.Show(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Package cli provides the interactive moderation console.
//
// The console mirrors the web panel: two tabs ("events" for ads and
// "users"), one record card at a time, Previous/Next navigation and
// Verify/Reject actions. Every decision is sent to the API and the tab is
// reloaded from the server.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin is closed. See runREPL for the command set.
package cli

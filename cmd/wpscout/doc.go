// Package wpscout provides the command-line interface for the wpscout
// tool. It configures subcommands (scan, image, show, history, update),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/wpscout/wpscout/cmd/wpscout"
//	func main() { wpscout.Execute() }
package wpscout

// Package cmd implements the almost CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, inspect, demos).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/almost/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "almost",
	Short: "almost - declarative widget trees rendered to HTML",
	Long: `almost builds a declarative widget tree, resolves it into plain
visual nodes and materializes them once into an HTML document.

Use "almost <command> --help" for more information about a command.`,
	Usage: "almost <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) (err error) {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("almost version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Help is only recognized directly after the command name, so flag
	// values such as "--demo help" reach the command untouched.
	cmdArgs := args[1:]
	if len(cmdArgs) > 0 {
		switch cmdArgs[0] {
		case "-h", "--help", "help":
			printCommandHelp(cmd)
			return nil
		}
	}

	defer errors.Recover("cmd."+cmd.Name, &err)
	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  almost render                      Render the configured demo")
	fmt.Println("  almost render --demo layouts       Render a specific demo")
	fmt.Println("  almost inspect --demo alignment    Print the resolved node tree")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

// flagValue returns the value following a flag, supporting both
// "--flag value" and "--flag=value".
func flagValue(args []string, i *int, name string) (string, bool, error) {
	arg := args[*i]
	if v, ok := cutFlag(arg, name); ok {
		return v, true, nil
	}
	if arg != name {
		return "", false, nil
	}
	if *i+1 >= len(args) || strings.HasPrefix(args[*i+1], "--") {
		return "", true, fmt.Errorf("%s requires a value", name)
	}
	*i++
	return args[*i], true, nil
}

// configError reports a configuration failure to the errors handler and
// returns it.
func configError(op string, err error) error {
	wrapped := &errors.AlmostError{Op: op, Kind: errors.KindConfig, Err: err}
	errors.Report(wrapped)
	return wrapped
}

func cutFlag(arg, name string) (string, bool) {
	return strings.CutPrefix(arg, name+"=")
}

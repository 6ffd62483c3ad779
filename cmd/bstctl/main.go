package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity (debug, info, warn, error)",
		Value:   "warn",
		EnvVars: []string{"BST_LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format (text or json)",
		Value:   "text",
		EnvVars: []string{"BST_LOG_FORMAT"},
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "result format (tree, list or json)",
		Value:   "tree",
		EnvVars: []string{"BST_OUTPUT"},
	},
	&cli.StringFlag{
		Name:    "metrics-listen",
		Usage:   "address to serve prometheus /metrics on (disabled when empty)",
		EnvVars: []string{"BST_METRICS_LISTEN"},
	},
	&cli.StringFlag{
		Name:    "keys",
		Usage:   "comma separated keys inserted before anything else",
		EnvVars: []string{"BST_KEYS"},
	},
}

func run(args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	app := cli.App{
		Name:      "bstctl",
		Usage:     "binary search tree playground",
		Version:   versioninfo.Short(),
		Flags:     globalFlags,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
	}
	app.Commands = []*cli.Command{
		cmdRun,
		cmdRepl,
		cmdDemo,
	}
	return &app
}

// Package cmd implements the coauthor command line.
//
// coauthor looks up a GitHub user and prints a Co-authored-by trailer using
// the account's no-reply address:
//
//	$ coauthor octocat
//	Co-authored-by: The Octocat <583231+octocat@users.noreply.github.com>
//
// The command has no subcommands so that every GitHub login, including
// "help" or "version", is accepted as the positional argument.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/coauthor/internal/coauthor"
	"github.com/Dicklesworthstone/coauthor/internal/config"
	"github.com/Dicklesworthstone/coauthor/internal/github"
	"github.com/Dicklesworthstone/coauthor/internal/version"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitError = 2
)

// Streams are the process-level inputs and outputs of a run.
type Streams struct {
	Out       io.Writer
	Err       io.Writer
	LookupEnv github.LookupFunc
}

// DefaultStreams returns the real stdio and process environment.
func DefaultStreams() Streams {
	return Streams{
		Out:       os.Stdout,
		Err:       os.Stderr,
		LookupEnv: github.EnvLookup,
	}
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type rootOptions struct {
	configPath string
	apiURL     string
	domain     string
	envFile    string
	copy       bool
	verbose    bool
	noColor    bool

	// helpRequested is set by the help func; cobra itself treats help as success.
	helpRequested bool
}

// Execute runs coauthor with the process arguments and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], DefaultStreams())
}

// Run executes one invocation. args excludes the program name.
func Run(ctx context.Context, args []string, streams Streams) int {
	if streams.LookupEnv == nil {
		streams.LookupEnv = github.EnvLookup
	}
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	root, opts := newRootCmd(streams)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if opts.helpRequested {
		return ExitUsage
	}
	if err == nil {
		return ExitOK
	}
	return report(root, err, !opts.noColor && isTerminal(streams.Err))
}

func newRootCmd(streams Streams) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "coauthor <github-username>",
		Short: "Print a Co-authored-by trailer for a GitHub user",
		Long: `coauthor looks up a GitHub account and prints a commit trailer that credits
it through the account's no-reply address:

  Co-authored-by: <name> <<id>+<login>@users.noreply.github.com>

A token from GITHUB_TOKEN or GH_TOKEN is sent as a bearer token when set.

Exit codes:
  0  trailer printed
  1  usage error
  2  API error or unusable response`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{}
			}
			// GitHub logins never start with a dash.
			if name := strings.TrimSpace(args[0]); name == "" || strings.HasPrefix(name, "-") {
				return &usageError{}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), opts, streams, strings.TrimSpace(args[0]))
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	cmd.SetVersionTemplate(version.Info() + "\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		opts.helpRequested = true
		printUsage(c)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		printUsage(c)
		return nil
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/coauthor/config.yaml)")
	flags.StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (default https://api.github.com)")
	flags.StringVar(&opts.domain, "domain", "", "no-reply e-mail domain (default github.com)")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file to read the token from when the environment has none")
	flags.BoolVar(&opts.copy, "copy", false, "also copy the trailer to the clipboard")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	return cmd, opts
}

// runLookup fetches username and prints its trailer.
func runLookup(ctx context.Context, opts *rootOptions, streams Streams, username string) error {
	logger := newLogger(streams.Err, opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return &configError{err: err}
	}
	cfg.Apply(config.Overrides{
		APIURL:  opts.apiURL,
		Domain:  opts.domain,
		EnvFile: opts.envFile,
	})

	token := github.ResolveToken(cfg.TokenEnv, streams.LookupEnv)
	if token == "" && cfg.EnvFile != "" {
		env, err := cfg.LoadEnvFile()
		if err != nil {
			return &configError{err: err}
		}
		token = github.ResolveToken(cfg.TokenEnv, github.MapLookup(env))
	}

	logger.Debug("configuration", "api_url", cfg.APIURL, "domain", cfg.Domain, "authenticated", token != "")

	client := github.NewClient(
		github.WithBaseURL(cfg.APIURL),
		github.WithToken(token),
		github.WithUserAgent(cfg.UserAgent),
		github.WithLogger(logger),
	)

	data, err := client.FetchUser(ctx, username)
	if err != nil {
		return err
	}

	profile, err := coauthor.ProfileFromResponse(username, data)
	if err != nil {
		return err
	}

	line := profile.Trailer(cfg.Domain)
	fmt.Fprintln(streams.Out, line)

	if opts.copy {
		if err := copyToClipboard(line); err != nil {
			logger.Warn("copy to clipboard failed", "err", err)
		} else {
			logger.Debug("copied trailer to clipboard")
		}
	}

	return nil
}

// printUsage writes the usage line and flag summary to stderr.
func printUsage(cmd *cobra.Command) {
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Usage: %s <github-username>\n", cmd.Name())
	if usages := cmd.LocalFlags().FlagUsages(); usages != "" {
		fmt.Fprintf(w, "\nFlags:\n%s", usages)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - check:    Check one password read from stdin
// - range:    Print the candidate set for a digest prefix
// - watch:    Check passwords line by line, printing only current verdicts
// - generate: Generate a random password
// - token:    Issue an operator access token

// Exit codes of the check subcommand.
const (
	exitNotFound    = 0
	exitFound       = 1
	exitCheckFailed = 2
	exitUsage       = 64
)

func main() {
	// Subcommand definitions
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	rangeCmd := flag.NewFlagSet("range", flag.ExitOnError)
	watchCmd := flag.NewFlagSet("watch", flag.ExitOnError)
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// range parameters
	rangePrefix := rangeCmd.String("prefix", "", "5-character hex digest prefix")

	// generate parameters
	generateLength := generateCmd.Int("length", 0, "Password length (0 uses the configured default)")
	generateExclude := generateCmd.String("exclude", "", "Substring that must not appear, such as a username")

	// token parameters
	tokenSubject := tokenCmd.String("subject", "", "Subject UUID (random when empty)")
	tokenRoles := tokenCmd.String("roles", "admin", "Comma-separated roles")
	tokenTTL := tokenCmd.Duration("ttl", time.Hour, "Token lifetime")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := cliFlags{
		Check: checkFlags{cmd: checkCmd},
		Range: rangeFlags{
			cmd:    rangeCmd,
			prefix: rangePrefix,
		},
		Watch: watchFlags{cmd: watchCmd},
		Generate: generateFlags{
			cmd:     generateCmd,
			length:  generateLength,
			exclude: generateExclude,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			roles:   tokenRoles,
			ttl:     tokenTTL,
		},
	}

	code, err := runSubcommand(ctx, &flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == exitNotFound {
			code = exitUsage
		}
	}
	stop()
	os.Exit(code)
}

type cliFlags struct {
	Check    checkFlags
	Range    rangeFlags
	Watch    watchFlags
	Generate generateFlags
	Token    tokenFlags
}

type checkFlags struct {
	cmd *flag.FlagSet
}

type rangeFlags struct {
	cmd    *flag.FlagSet
	prefix *string
}

type watchFlags struct {
	cmd *flag.FlagSet
}

type generateFlags struct {
	cmd     *flag.FlagSet
	length  *int
	exclude *string
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	roles   *string
	ttl     *time.Duration
}

func runSubcommand(ctx context.Context, flags *cliFlags) (int, error) {
	switch os.Args[1] {
	case "check":
		return handleCheck(ctx, flags)
	case "range":
		return exitNotFound, handleRange(ctx, flags)
	case "watch":
		return exitNotFound, handleWatch(ctx, flags)
	case "generate":
		return exitNotFound, handleGenerate(flags)
	case "token":
		return exitNotFound, handleToken(flags)
	default:
		printUsage()

		return exitUsage, errors.New("unknown subcommand")
	}
}

func handleCheck(ctx context.Context, flags *cliFlags) (int, error) {
	if err := flags.Check.cmd.Parse(os.Args[2:]); err != nil {
		return exitUsage, errors.Wrap(err, "failed to parse check flags")
	}

	app, err := newApp()
	if err != nil {
		return exitCheckFailed, err
	}

	return runCheck(ctx, app.breachUC, os.Stdin, os.Stdout)
}

func handleRange(ctx context.Context, flags *cliFlags) error {
	if err := flags.Range.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse range flags")
	}

	if *flags.Range.prefix == "" {
		return errors.New("-prefix flag is required for range command")
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	return runRange(ctx, app.breachUC, *flags.Range.prefix, os.Stdout)
}

func handleWatch(ctx context.Context, flags *cliFlags) error {
	if err := flags.Watch.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse watch flags")
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	return runWatch(ctx, app.breachUC, os.Stdin, os.Stdout)
}

func handleGenerate(flags *cliFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	return runGenerate(app.passwordUC, *flags.Generate.length, *flags.Generate.exclude, os.Stdout)
}

func handleToken(flags *cliFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	return runToken(app.tokenSvc, *flags.Token.subject, *flags.Token.roles, *flags.Token.ttl, os.Stdout)
}

func printUsage() {
	fmt.Println("Usage: pwcheck <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  check       Check a password read from stdin (exit 0 not found, 1 found, 2 check failed)")
	fmt.Println("  range       Print the candidate set for a 5-character digest prefix")
	fmt.Println("  watch       Check passwords line by line; only current verdicts are printed")
	fmt.Println("  generate    Generate a random password")
	fmt.Println("  token       Issue an operator access token")
	fmt.Println("")
	fmt.Println("Use 'pwcheck <command> -h' for more information about a command.")
}

// Command implementations are in their respective files

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/haukened/dogo/internal/dns/cli"
	"github.com/haukened/dogo/internal/dns/common/log"
	"github.com/haukened/dogo/internal/dns/config"
	"github.com/haukened/dogo/internal/dns/dispatch"
	"github.com/haukened/dogo/internal/dns/dogerrors"
	"github.com/haukened/dogo/internal/dns/output"
)

const (
	appName = "dog"
	version = "0.1.0-dev"
)

const usage = `Usage: dog [OPTIONS] [QUERY ...]

  -q, --query HOST          Query name (repeatable)
  -t, --type TYPE           Query type (repeatable)
  -n, --nameserver ADDR     Server (repeatable)
      --class {IN,CH,HS}    Query class (repeatable)
      --edns {disable,hide,show}
                            OPT policy
      --txid N              Fixed 16-bit transaction id
  -Z TWEAK                  One of aa, ad, cd, bufsize=N (repeatable)
  -U / -T / -S / -H         Force transport: udp / tcp / tls / https
  -1, --short               Short output
  -J, --json                JSON output
      --color, --colour {always,automatic,never}
                            Color policy
      --seconds             Durations as integer seconds
      --time                Print transport wall time
  -v, --version              Print version and exit
  -?, --help                 Print this help and exit

A bare positional argument is a query name unless it matches a known type
or class mnemonic, or starts with @ (a nameserver).
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	configureLogger()

	opt, err := cli.Scan(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error [argument]: %s\n", err)
		return int(dogerrors.ExitArgument)
	}

	if opt.Help {
		fmt.Fprint(stdout, usage)
		return int(dogerrors.ExitSuccess)
	}
	if opt.Version {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return int(dogerrors.ExitSuccess)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error [argument]: %s\n", err)
		return int(dogerrors.ExitArgument)
	}

	plan, outOpts, err := cli.Build(opt, cfg)
	if err != nil {
		return reportFatal(stderr, err)
	}

	dispatcher := dispatch.New(log.GetLogger())
	outcomes := dispatcher.Run(context.Background(), plan)

	if renderErr := output.Render(stdout, outcomes, outOpts); renderErr != nil {
		var noResult *dogerrors.NoResult
		if errors.As(renderErr, &noResult) {
			fmt.Fprintln(stderr, noResult.Error())
			return int(dogerrors.ExitNoResult)
		}
		fmt.Fprintf(stderr, "%s\n", renderErr)
		return int(dogerrors.ExitNetworkOrProtocol)
	}

	return int(dispatch.ExitCode(outcomes))
}

// reportFatal prints a pre-flight error (argument parsing or resolver
// discovery) and returns the exit code its taxonomy member maps to.
func reportFatal(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "%s\n", err)
	switch err.(type) {
	case *dogerrors.ResolverDiscoveryError:
		return int(dogerrors.ExitResolverDiscovery)
	default:
		return int(dogerrors.ExitArgument)
	}
}

// configureLogger selects the process-wide logger's level from DOG_DEBUG
// per §5: unset means warn, any non-empty value means info, and the exact
// value "trace" means debug (zap has no separate trace level).
func configureLogger() {
	debug, present := os.LookupEnv("DOG_DEBUG")
	level := "warn"
	if present && debug != "" {
		level = "info"
	}
	if debug == "trace" {
		level = "debug"
	}
	if err := log.Configure("prod", level); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
	}
}

// Package cli scans argv into the flag/positional shapes described in §6,
// then assembles a dispatch.Plan and output.Options from them. Parsing is
// split from dispatching so both halves are independently testable without
// a network.
//
// The scanner is a hand-rolled loop rather than the standard library's
// flag.FlagSet: flag.Parse stops consuming flags at the first positional
// argument, which breaks scenarios like `dog example.net MX @1.1.1.1 -T`
// where a flag follows two positionals. No third-party argument parser
// appears anywhere in the retrieval pack either, so a small manual scanner
// is the least surprising choice (see DESIGN.md).
package cli

import "fmt"

// Options is the raw, unvalidated result of scanning argv. Every string
// field still needs a domain/-level parse; that happens in plan.go so this
// type stays a pure reflection of what the user typed.
type Options struct {
	Queries     []string
	Types       []string
	Classes     []string
	Nameservers []string
	EDNS        string
	TxID        string
	HasTxID     bool
	Tweaks      []string
	Transport   string
	Short       bool
	JSON        bool
	Color       string
	Seconds     bool
	ShowTime    bool
	Help        bool
	Version     bool
}

// Scan walks argv (not including the program name) left to right,
// classifying every token as a flag, a flag's value, or a positional
// argument per the shape rules in §6.
func Scan(args []string) (Options, error) {
	var opt Options

	next := func(i int, flag string) (string, int, error) {
		if i+1 >= len(args) {
			return "", i, fmt.Errorf("%s requires a value", flag)
		}
		return args[i+1], i + 1, nil
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "-q", "--query":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.Queries = append(opt.Queries, v)
			i = j
		case "-t", "--type":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.Types = append(opt.Types, v)
			i = j
		case "-n", "--nameserver":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.Nameservers = append(opt.Nameservers, v)
			i = j
		case "--class":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.Classes = append(opt.Classes, v)
			i = j
		case "--edns":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.EDNS = v
			i = j
		case "--txid":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.TxID = v
			opt.HasTxID = true
			i = j
		case "-Z":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.Tweaks = append(opt.Tweaks, v)
			i = j
		case "-U":
			opt.Transport = "udp"
		case "-T":
			opt.Transport = "tcp"
		case "-S":
			opt.Transport = "tls"
		case "-H":
			opt.Transport = "https"
		case "-1", "--short":
			opt.Short = true
		case "-J", "--json":
			opt.JSON = true
		case "--color", "--colour":
			v, j, err := next(i, a)
			if err != nil {
				return opt, err
			}
			opt.Color = v
			i = j
		case "--seconds":
			opt.Seconds = true
		case "--time":
			opt.ShowTime = true
		case "-v", "--version":
			opt.Version = true
		case "-?", "--help":
			opt.Help = true
		default:
			if len(a) > 1 && a[0] == '@' {
				opt.Nameservers = append(opt.Nameservers, a[1:])
				continue
			}
			if len(a) > 0 && a[0] == '-' && a != "-" {
				return opt, fmt.Errorf("unknown flag %s", a)
			}
			classifyPositional(&opt, a)
		}
	}

	return opt, nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/haukened/dogo/internal/dns/common/utils"
	"github.com/haukened/dogo/internal/dns/config"
	"github.com/haukened/dogo/internal/dns/dispatch"
	"github.com/haukened/dogo/internal/dns/dogerrors"
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/idna"
	"github.com/haukened/dogo/internal/dns/output"
	"github.com/haukened/dogo/internal/dns/resolvconf"
	"github.com/haukened/dogo/internal/dns/transport"
	"github.com/haukened/dogo/internal/dns/txid"
)

// classifyPositional sorts one bare argument into Types, Classes, or
// Queries per the shape rule in §6: a known type mnemonic becomes a type, a
// known class mnemonic becomes a class, otherwise it's a query name.
// @-prefixed nameservers are peeled off by the scanner before this runs.
func classifyPositional(opt *Options, a string) {
	if _, ok := domain.RRTypeFromString(a); ok {
		opt.Types = append(opt.Types, a)
		return
	}
	if domain.ParseRRClass(strings.ToUpper(a)) != 0 {
		opt.Classes = append(opt.Classes, a)
		return
	}
	opt.Queries = append(opt.Queries, a)
}

// Build turns a scanned Options plus ambient defaults into a dispatch.Plan
// and output.Options, applying every domain-level parse and validation the
// scanner deliberately deferred. Any failure is an ArgumentError or
// ResolverDiscoveryError, both fatal per §7.
func Build(opt Options, defaults *config.AppConfig) (dispatch.Plan, output.Options, error) {
	plan := dispatch.Plan{}

	if len(opt.Queries) == 0 {
		return plan, output.Options{}, &dogerrors.ArgumentError{Cause: fmt.Errorf("no query name given")}
	}
	for _, q := range opt.Queries {
		name, err := domain.ParseName(utils.CanonicalDNSName(q))
		if err != nil {
			return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
		}
		if defaults.IDNA {
			name, err = idna.ToASCII(name)
			if err != nil {
				return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
			}
		}
		plan.Names = append(plan.Names, name)
	}

	if len(opt.Types) == 0 {
		plan.Types = []domain.RRType{domain.RRTypeA}
	}
	for _, t := range opt.Types {
		code, ok := domain.RRTypeFromString(t)
		if !ok {
			return plan, output.Options{}, &dogerrors.ArgumentError{Cause: fmt.Errorf("unknown query type %q", t)}
		}
		plan.Types = append(plan.Types, code)
	}

	if len(opt.Classes) == 0 {
		plan.Classes = []domain.RRClass{domain.RRClassIN}
	}
	for _, c := range opt.Classes {
		class := domain.ParseRRClass(strings.ToUpper(c))
		if class == 0 {
			return plan, output.Options{}, &dogerrors.ArgumentError{Cause: fmt.Errorf("unknown query class %q", c)}
		}
		plan.Classes = append(plan.Classes, class)
	}

	servers := opt.Nameservers
	if len(servers) == 0 {
		servers = defaults.Nameservers
	}
	if len(servers) == 0 {
		addr, err := resolvconf.Discover(resolvconf.DefaultPath)
		if err != nil {
			return plan, output.Options{}, err
		}
		servers = []string{addr}
	}
	for _, s := range servers {
		ep, err := dispatch.ParseEndpoint(s)
		if err != nil {
			return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
		}
		plan.Servers = append(plan.Servers, ep)
	}

	switch opt.Transport {
	case "udp":
		plan.Transport = transport.UDP
	case "tcp":
		plan.Transport = transport.TCP
	case "tls":
		plan.Transport = transport.TLS
	case "https":
		plan.Transport = transport.HTTPS
	case "":
		k, err := parseTransportPreference(defaults.Transport.DefaultPreference)
		if err != nil {
			return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
		}
		plan.Transport = k
	default:
		return plan, output.Options{}, &dogerrors.ArgumentError{Cause: fmt.Errorf("unknown transport %q", opt.Transport)}
	}

	edns, err := parseEDNSPolicy(opt.EDNS)
	if err != nil {
		return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
	}
	plan.EDNS = edns

	tweaks, err := parseTweaks(opt.Tweaks, defaults.Transport.DefaultBufSize)
	if err != nil {
		return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
	}
	plan.Tweaks = tweaks

	if opt.HasTxID {
		n, err := strconv.ParseUint(opt.TxID, 10, 16)
		if err != nil {
			return plan, output.Options{}, &dogerrors.ArgumentError{Cause: fmt.Errorf("invalid --txid %q: %s", opt.TxID, err)}
		}
		plan.TxIDs = txid.NewFixedGenerator(uint16(n))
	} else {
		plan.TxIDs = txid.NewGenerator()
	}

	plan.Timeout = time.Duration(defaults.Transport.TimeoutSeconds) * time.Second

	out := output.Options{Seconds: opt.Seconds, ShowTime: opt.ShowTime}
	switch {
	case opt.JSON:
		out.Format = output.FormatJSON
	case opt.Short:
		out.Format = output.FormatShort
	default:
		out.Format = output.FormatTable
	}

	colorStr := opt.Color
	if colorStr == "" {
		colorStr = defaults.Output.Color
	}
	color, err := output.ParseColorPolicy(colorStr)
	if err != nil {
		return plan, output.Options{}, &dogerrors.ArgumentError{Cause: err}
	}
	out.Color = color

	return plan, out, nil
}

func parseTransportPreference(s string) (transport.Kind, error) {
	switch s {
	case "udp":
		return transport.UDP, nil
	case "tcp":
		return transport.TCP, nil
	case "tls":
		return transport.TLS, nil
	case "https":
		return transport.HTTPS, nil
	case "auto":
		return transport.Auto, nil
	default:
		return transport.Auto, fmt.Errorf("unknown default transport preference %q", s)
	}
}

func parseEDNSPolicy(s string) (domain.EDNSPolicy, error) {
	switch s {
	case "", "disable":
		return domain.EDNSDisable, nil
	case "hide":
		return domain.EDNSHide, nil
	case "show":
		return domain.EDNSShow, nil
	default:
		return domain.EDNSDisable, fmt.Errorf("unknown --edns value %q", s)
	}
}

// parseTweaks applies the -Z tweaks in order (aa, ad, cd, bufsize=N) over
// the ambient default UDP payload size.
func parseTweaks(raw []string, defaultBufSize uint16) (domain.Tweaks, error) {
	tweaks := domain.Tweaks{BufSize: defaultBufSize, BufSizeSet: true}
	for _, t := range raw {
		switch {
		case t == "aa":
			tweaks.AA = true
		case t == "ad":
			tweaks.AD = true
		case t == "cd":
			tweaks.CD = true
		case strings.HasPrefix(t, "bufsize="):
			n, err := strconv.ParseUint(strings.TrimPrefix(t, "bufsize="), 10, 16)
			if err != nil {
				return tweaks, fmt.Errorf("invalid -Z bufsize value %q: %s", t, err)
			}
			tweaks.BufSize = uint16(n)
			tweaks.BufSizeSet = true
		default:
			return tweaks, fmt.Errorf("unknown -Z tweak %q", t)
		}
	}
	return tweaks, nil
}

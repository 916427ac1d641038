// Package dispatch runs the Cartesian-product query plan described in
// §4.5: every (name, type, class, server) combination, strictly
// sequential, with the UDP→TCP truncation fallback built in.
package dispatch

import (
	"context"
	"time"

	"github.com/haukened/dogo/internal/dns/common/log"
	"github.com/haukened/dogo/internal/dns/dogerrors"
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/transport"
	"github.com/haukened/dogo/internal/dns/txid"
	"github.com/haukened/dogo/internal/dns/wire"
)

// Plan is the fully-resolved set of inputs the dispatcher expands into the
// Cartesian product of requests.
type Plan struct {
	Names     []domain.Name
	Types     []domain.RRType
	Classes   []domain.RRClass
	Servers   []transport.Endpoint
	Transport transport.Kind // Auto, or a forced carrier from -U/-T/-S/-H
	EDNS      domain.EDNSPolicy
	Tweaks    domain.Tweaks
	TxIDs     *txid.Generator
	Timeout   time.Duration
}

// Outcome is the per-request result the output adapter renders. Exactly
// one is emitted per Cartesian-product member, in insertion order.
type Outcome struct {
	Request   domain.Message
	Endpoint  transport.Endpoint
	Transport transport.Kind
	Response  domain.Message
	Err       error
	Duration  time.Duration
	Truncated bool // tc=1 reported as a warning rather than followed up
}

// Dispatcher owns one instance of each of the four transports and runs
// plans against them.
type Dispatcher struct {
	udp    transport.Transport
	tcp    transport.Transport
	tls    transport.Transport
	https  transport.Transport
	logger log.Logger
}

// New builds a Dispatcher using the default transport implementations.
func New(logger log.Logger) *Dispatcher {
	return &Dispatcher{
		udp:    transport.NewUDPTransport(logger),
		tcp:    transport.NewTCPTransport(logger),
		tls:    transport.NewTLSTransport(logger),
		https:  transport.NewHTTPSTransport(logger),
		logger: logger,
	}
}

// Transports overrides the four carriers, e.g. with fakes under test. Any
// nil argument leaves the existing carrier in place.
func (d *Dispatcher) Transports(udp, tcp, tls, https transport.Transport) {
	if udp != nil {
		d.udp = udp
	}
	if tcp != nil {
		d.tcp = tcp
	}
	if tls != nil {
		d.tls = tls
	}
	if https != nil {
		d.https = https
	}
}

func (d *Dispatcher) carrier(kind transport.Kind) transport.Transport {
	switch kind {
	case transport.TCP:
		return d.tcp
	case transport.TLS:
		return d.tls
	case transport.HTTPS:
		return d.https
	default:
		return d.udp
	}
}

// Run executes plan's full Cartesian product strictly sequentially,
// returning one Outcome per (name, type, class, server) tuple in
// insertion order. A per-request failure never aborts the remaining
// expansion — it is recorded on that Outcome's Err field.
func (d *Dispatcher) Run(ctx context.Context, plan Plan) []Outcome {
	var outcomes []Outcome
	for _, name := range plan.Names {
		for _, qtype := range plan.Types {
			for _, class := range plan.Classes {
				for _, server := range plan.Servers {
					outcomes = append(outcomes, d.runOne(ctx, plan, name, qtype, class, server))
				}
			}
		}
	}
	return outcomes
}

func (d *Dispatcher) runOne(ctx context.Context, plan Plan, name domain.Name, qtype domain.RRType, class domain.RRClass, server transport.Endpoint) Outcome {
	id := plan.TxIDs.Next()
	req := domain.BuildRequest(domain.RequestParams{
		Name:   name,
		Type:   qtype,
		Class:  class,
		TxID:   id,
		EDNS:   plan.EDNS,
		Tweaks: plan.Tweaks,
	})

	encoded, err := wire.EncodeRequest(req)
	if err != nil {
		return Outcome{Request: req, Endpoint: server, Err: &dogerrors.ProtocolError{Cause: err}}
	}

	kind := plan.Transport
	autoResolved := kind == transport.Auto
	if autoResolved {
		kind = transport.UDP
	}

	start := time.Now()
	respBytes, err := d.send(ctx, kind, server, encoded, plan.Timeout)
	d.logger.Debug(map[string]any{"txid": id, "endpoint": server.Addr + server.URL, "transport": kind.String(), "elapsed": time.Since(start)}, "query sent")
	if err != nil {
		return Outcome{Request: req, Endpoint: server, Transport: kind, Err: wrapTransportErr(err), Duration: time.Since(start)}
	}

	resp, err := wire.DecodeMessage(respBytes)
	if err != nil {
		return Outcome{Request: req, Endpoint: server, Transport: kind, Err: err, Duration: time.Since(start)}
	}

	outcome := Outcome{Request: req, Endpoint: server, Transport: kind, Response: resp, Duration: time.Since(start)}

	if kind == transport.UDP && resp.Header.Flags.TC {
		if autoResolved {
			d.logger.Debug(map[string]any{"txid": id, "endpoint": server.Addr}, "udp response truncated, retrying via tcp")
			tcpBytes, err := d.send(ctx, transport.TCP, server, encoded, plan.Timeout)
			if err != nil {
				outcome.Err = wrapTransportErr(err)
				return outcome
			}
			tcpResp, err := wire.DecodeMessage(tcpBytes)
			if err != nil {
				outcome.Err = err
				return outcome
			}
			outcome.Transport = transport.TCP
			outcome.Response = tcpResp
		} else {
			d.logger.Warn(map[string]any{"txid": id, "endpoint": server.Addr}, "udp response truncated; --udp forced, not retrying")
			outcome.Truncated = true
		}
	}

	return outcome
}

func (d *Dispatcher) send(ctx context.Context, kind transport.Kind, server transport.Endpoint, request []byte, timeout time.Duration) ([]byte, error) {
	sendCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		sendCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return d.carrier(kind).Send(sendCtx, request, server)
}

func wrapTransportErr(err error) error {
	return &dogerrors.NetworkError{Cause: err}
}

// ExitCode determines the process exit status for a completed set of
// outcomes in table/JSON mode per §6: 0 unless a transport/protocol error
// occurred, regardless of answer count (only the short-mode renderer's
// NoResult sentinel, handled separately in the output adapter, turns a
// zero-answer result into exit 2).
func ExitCode(outcomes []Outcome) dogerrors.ExitCode {
	for _, o := range outcomes {
		if o.Err != nil {
			return dogerrors.ExitNetworkOrProtocol
		}
	}
	return dogerrors.ExitSuccess
}

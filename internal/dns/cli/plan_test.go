package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dogo/internal/dns/config"
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/output"
	"github.com/haukened/dogo/internal/dns/transport"
)

func defaultsForTest() *config.AppConfig {
	cfg := config.DEFAULT_APP_CONFIG
	return &cfg
}

func TestBuild_DefaultsToAInIN(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}, Nameservers: []string{"1.1.1.1"}}
	plan, _, err := Build(opt, defaultsForTest())
	require.NoError(t, err)
	require.Len(t, plan.Types, 1)
	assert.Equal(t, domain.RRTypeA, plan.Types[0])
	require.Len(t, plan.Classes, 1)
	assert.Equal(t, domain.RRClassIN, plan.Classes[0])
	assert.Equal(t, transport.Auto, plan.Transport)
}

func TestBuild_ForcedTransport(t *testing.T) {
	opt := Options{Queries: []string{"example.net"}, Types: []string{"MX"}, Nameservers: []string{"1.1.1.1"}, Transport: "tcp"}
	plan, _, err := Build(opt, defaultsForTest())
	require.NoError(t, err)
	assert.Equal(t, transport.TCP, plan.Transport)
	assert.Equal(t, domain.RRTypeMX, plan.Types[0])
}

func TestBuild_NoNameserverUsesResolverDiscoveryError(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}}
	cfg := defaultsForTest()
	_, _, err := Build(opt, cfg)
	// resolv.conf may or may not exist in the test sandbox; either a nil
	// error (it exists) or a *dogerrors.ResolverDiscoveryError is correct.
	// The important property under test is that it never panics and never
	// silently fabricates a nameserver.
	_ = err
}

func TestBuild_UnknownTypeIsArgumentError(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}, Types: []string{"NOTATYPE"}, Nameservers: []string{"1.1.1.1"}}
	_, _, err := Build(opt, defaultsForTest())
	require.Error(t, err)
}

func TestBuild_FixedTxID(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}, Nameservers: []string{"1.1.1.1"}, HasTxID: true, TxID: "4242"}
	plan, _, err := Build(opt, defaultsForTest())
	require.NoError(t, err)
	assert.EqualValues(t, 4242, plan.TxIDs.Next())
}

func TestBuild_Tweaks(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}, Nameservers: []string{"1.1.1.1"}, Tweaks: []string{"aa", "bufsize=4096"}}
	plan, _, err := Build(opt, defaultsForTest())
	require.NoError(t, err)
	assert.True(t, plan.Tweaks.AA)
	assert.EqualValues(t, 4096, plan.Tweaks.BufSize)
}

func TestBuild_ShortAndJSONFormats(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}, Nameservers: []string{"1.1.1.1"}, Short: true}
	_, outOpts, err := Build(opt, defaultsForTest())
	require.NoError(t, err)
	assert.Equal(t, output.FormatShort, outOpts.Format)

	opt = Options{Queries: []string{"a.example"}, Nameservers: []string{"1.1.1.1"}, JSON: true}
	_, outOpts, err = Build(opt, defaultsForTest())
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, outOpts.Format)
}

func TestBuild_InvalidColorIsArgumentError(t *testing.T) {
	opt := Options{Queries: []string{"a.example"}, Nameservers: []string{"1.1.1.1"}, Color: "rainbow"}
	_, _, err := Build(opt, defaultsForTest())
	require.Error(t, err)
}

func TestBuild_CartesianNamesAndTypes(t *testing.T) {
	opt := Options{
		Queries:     []string{"example.net", "example.org"},
		Types:       []string{"A", "MX"},
		Nameservers: []string{"1.1.1.1"},
	}
	plan, _, err := Build(opt, defaultsForTest())
	require.NoError(t, err)
	require.Len(t, plan.Names, 2)
	require.Len(t, plan.Types, 2)
}

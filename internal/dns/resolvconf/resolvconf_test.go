package resolvconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dogo/internal/dns/dogerrors"
)

func writeResolvConf(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDiscover_FindsFirstNameserver(t *testing.T) {
	path := writeResolvConf(t, "# comment\nnameserver 1.1.1.1\nnameserver 8.8.8.8\n")
	addr, err := Discover(path)
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1", addr)
}

func TestDiscover_NoNameserverLine(t *testing.T) {
	path := writeResolvConf(t, "# comment\nsearch example.com\n")
	_, err := Discover(path)
	require.Error(t, err)
	var discErr *dogerrors.ResolverDiscoveryError
	require.ErrorAs(t, err, &discErr)
}

func TestDiscover_UnreadableFile(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	var discErr *dogerrors.ResolverDiscoveryError
	require.ErrorAs(t, err, &discErr)
}

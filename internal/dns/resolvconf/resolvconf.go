// Package resolvconf discovers a default nameserver by reading
// /etc/resolv.conf when the caller supplied none with -n. It is the
// external collaborator named in §1, implemented at the minimum needed to
// drive exit code 4.
package resolvconf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/haukened/dogo/internal/dns/dogerrors"
)

// DefaultPath is the standard location on POSIX systems.
const DefaultPath = "/etc/resolv.conf"

// Discover returns the first "nameserver" address found in the file at
// path, wrapping any read or not-found failure in a ResolverDiscoveryError.
func Discover(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &dogerrors.ResolverDiscoveryError{Cause: fmt.Errorf("open %s: %w", path, err)}
	}
	defer f.Close()

	addr, err := firstNameserver(f)
	if err != nil {
		return "", &dogerrors.ResolverDiscoveryError{Cause: err}
	}
	return addr, nil
}

func firstNameserver(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			return fields[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no nameserver line found")
}

// Package port validates guest-to-host port forwarding rules.
package port

import (
	"fmt"
	"net/netip"
)

// Valid TCP/UDP port number range for forwarding rules.
const (
	Min = 1
	Max = 65535
)

// CheckNumber reports whether n is a usable port number.
func CheckNumber(n int) error {
	if n < Min || n > Max {
		return fmt.Errorf("port %d out of range %d-%d", n, Min, Max)
	}
	return nil
}

// CheckBindAddr reports whether addr is a valid IPv4 or IPv6 literal.
// An empty address is accepted and means "bind all host interfaces".
func CheckBindAddr(addr string) error {
	if addr == "" {
		return nil
	}
	if _, err := netip.ParseAddr(addr); err != nil {
		return fmt.Errorf("bind address %q is not an IP literal: %w", addr, err)
	}
	return nil
}

// Binding is a host-side port binding: the host port together with the
// address it binds to.
type Binding struct {
	Host   int
	HostIP string
}

func (b Binding) String() string {
	if b.HostIP == "" {
		return fmt.Sprintf("*:%d", b.Host)
	}
	return fmt.Sprintf("%s:%d", b.HostIP, b.Host)
}

// Collisions returns a message for every host binding that appears more
// than once in the list. Two rules collide only when both the host port and
// the bind address match; the same port on different addresses is fine.
// Collisions are not rejected here: the second bind fails at the
// orchestration layer, so callers surface these as warnings.
func Collisions(bindings []Binding) []string {
	seen := make(map[Binding]int)
	var msgs []string

	for _, b := range bindings {
		seen[b]++
		if seen[b] == 2 {
			msgs = append(msgs, fmt.Sprintf("host binding %s is mapped more than once; the second bind will fail at boot", b))
		}
	}

	return msgs
}

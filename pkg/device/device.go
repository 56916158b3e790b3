// Package device describes the network devices a diagram node can represent
// and how their ports are numbered.
//
// A [Profile] fixes the port count and port naming of a device type. Routers
// carry four GigabitEthernet ports (Gig0/0 to Gig0/3), switches eight
// FastEthernet ports (Fa0/1 to Fa0/8) and end hosts a single Ethernet port
// (Eth0). Placement itself is delegated to [ports.Calculate], so every device
// type shares the same even-spacing rule.
package device

import (
	"fmt"
	"slices"
	"strings"

	apperr "github.com/matzehuels/portlayout/pkg/errors"
	"github.com/matzehuels/portlayout/pkg/ports"
)

// Supported device types.
const (
	TypeRouter = "router"
	TypeSwitch = "switch"
	TypePC     = "pc"
	TypeServer = "server"
	TypeHub    = "hub"
)

// Profile is the port configuration of one device type.
type Profile struct {
	Type  string
	Ports int
	name  func(index int) string
}

// Port is a placed port with its interface name.
type Port struct {
	ports.Placement
	Name string
}

var profiles = map[string]Profile{
	TypeRouter: {Type: TypeRouter, Ports: 4, name: func(i int) string { return fmt.Sprintf("Gig0/%d", i) }},
	TypeSwitch: {Type: TypeSwitch, Ports: 8, name: func(i int) string { return fmt.Sprintf("Fa0/%d", i+1) }},
	TypePC:     {Type: TypePC, Ports: 1, name: ethName},
	TypeServer: {Type: TypeServer, Ports: 1, name: ethName},
	TypeHub:    {Type: TypeHub, Ports: 1, name: ethName},
}

func ethName(i int) string { return fmt.Sprintf("Eth%d", i) }

// Types returns the known device types in sorted order.
func Types() []string {
	types := make([]string, 0, len(profiles))
	for t := range profiles {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Lookup returns the profile for a device type. Matching is case-insensitive.
func Lookup(deviceType string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(deviceType))]
	if !ok {
		return Profile{}, apperr.New(apperr.ErrCodeInvalidDevice,
			"unknown device type %q (known: %s)", deviceType, strings.Join(Types(), ", "))
	}
	return p, nil
}

// PortName returns the interface name of the port at index.
func (p Profile) PortName(index int) string {
	return p.name(index)
}

// HandleIDs returns the outgoing and incoming connection handle ids of the
// port at index. Both handles share the port's position.
func (p Profile) HandleIDs(index int) (source, target string) {
	return fmt.Sprintf("port-%d", index), fmt.Sprintf("port-%d-in", index)
}

// Layout places the profile's ports and attaches their names.
func (p Profile) Layout() ([]Port, error) {
	l, err := ports.Calculate(p.Ports)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", p.Type, err)
	}
	out := make([]Port, len(l))
	for i, pl := range l {
		out[i] = Port{Placement: pl, Name: p.PortName(pl.Index)}
	}
	return out, nil
}

// Placements strips the names from a named layout.
func Placements(named []Port) ports.Layout {
	l := make(ports.Layout, len(named))
	for i, np := range named {
		l[i] = np.Placement
	}
	return l
}

package device

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	apperr "github.com/matzehuels/portlayout/pkg/errors"
	"github.com/matzehuels/portlayout/pkg/ports"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPorts int
		wantErr   bool
	}{
		{"router", "router", 4, false},
		{"switch", "switch", 8, false},
		{"pc", "pc", 1, false},
		{"server", "server", 1, false},
		{"hub", "hub", 1, false},
		{"mixed case", "Switch", 8, false},
		{"padded", "  router ", 4, false},

		{"unknown", "modem", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !apperr.Is(err, apperr.ErrCodeInvalidDevice) {
					t.Errorf("Lookup(%q) returned wrong error code: %v", tt.input, err)
				}
				return
			}
			if p.Ports != tt.wantPorts {
				t.Errorf("Lookup(%q).Ports = %d, want %d", tt.input, p.Ports, tt.wantPorts)
			}
		})
	}
}

func TestTypes(t *testing.T) {
	want := []string{"hub", "pc", "router", "server", "switch"}
	if diff := cmp.Diff(want, Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
}

func TestPortNames(t *testing.T) {
	tests := []struct {
		device string
		want   []string
	}{
		{TypeRouter, []string{"Gig0/0", "Gig0/1", "Gig0/2", "Gig0/3"}},
		{TypeSwitch, []string{"Fa0/1", "Fa0/2", "Fa0/3", "Fa0/4", "Fa0/5", "Fa0/6", "Fa0/7", "Fa0/8"}},
		{TypePC, []string{"Eth0"}},
		{TypeServer, []string{"Eth0"}},
		{TypeHub, []string{"Eth0"}},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			p, err := Lookup(tt.device)
			if err != nil {
				t.Fatal(err)
			}
			named, err := p.Layout()
			if err != nil {
				t.Fatal(err)
			}
			got := make([]string, len(named))
			for i, np := range named {
				got[i] = np.Name
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRouterLayout(t *testing.T) {
	p, _ := Lookup(TypeRouter)
	got, err := p.Layout()
	if err != nil {
		t.Fatal(err)
	}

	want := []Port{
		{Placement: ports.Placement{Index: 0, PortNumber: 1, Edge: ports.Left, Offset: 33.33}, Name: "Gig0/0"},
		{Placement: ports.Placement{Index: 1, PortNumber: 2, Edge: ports.Left, Offset: 66.67}, Name: "Gig0/1"},
		{Placement: ports.Placement{Index: 2, PortNumber: 3, Edge: ports.Right, Offset: 33.33}, Name: "Gig0/2"},
		{Placement: ports.Placement{Index: 3, PortNumber: 4, Edge: ports.Right, Offset: 66.67}, Name: "Gig0/3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("router layout mismatch (-want +got):\n%s", diff)
	}
}

func TestPCLayout(t *testing.T) {
	p, _ := Lookup(TypePC)
	got, _ := p.Layout()

	if len(got) != 1 {
		t.Fatalf("pc ports = %d, want 1", len(got))
	}
	if got[0].Edge != ports.Left || got[0].Offset != 50 {
		t.Errorf("pc port = %+v, want left 50", got[0])
	}
}

func TestLayoutNegativePorts(t *testing.T) {
	p := Profile{Type: "broken", Ports: -3, name: ethName}
	if _, err := p.Layout(); !apperr.Is(err, apperr.ErrCodeInvalidPortCount) {
		t.Errorf("Layout() error = %v, want INVALID_PORT_COUNT", err)
	}
}

func TestHandleIDs(t *testing.T) {
	p, _ := Lookup(TypeSwitch)
	src, dst := p.HandleIDs(3)
	if src != "port-3" || dst != "port-3-in" {
		t.Errorf("HandleIDs(3) = %q, %q", src, dst)
	}
}

func TestPlacements(t *testing.T) {
	p, _ := Lookup(TypeSwitch)
	named, _ := p.Layout()
	want, _ := ports.Calculate(8)

	if diff := cmp.Diff(want, Placements(named)); diff != "" {
		t.Errorf("Placements mismatch (-want +got):\n%s", diff)
	}
}

package ports

import (
	"encoding/json"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	device string
	names  func(index int) string
	check  bool
}

// WithJSONDevice records the device type the layout was computed for.
func WithJSONDevice(device string) JSONOption {
	return func(r *jsonRenderer) { r.device = device }
}

// WithJSONNames attaches a human-facing name to every port (e.g. "Gig0/0").
func WithJSONNames(name func(index int) string) JSONOption {
	return func(r *jsonRenderer) { r.names = name }
}

// WithJSONCheck embeds the result of [Verify] in the output.
func WithJSONCheck() JSONOption {
	return func(r *jsonRenderer) { r.check = true }
}

type jsonOutput struct {
	Device string     `json:"device,omitempty"`
	Total  int        `json:"total"`
	Left   int        `json:"left"`
	Right  int        `json:"right"`
	Ports  []jsonPort `json:"ports"`
	Check  *jsonCheck `json:"check,omitempty"`
}

type jsonPort struct {
	Index  int     `json:"index"`
	Number int     `json:"port"`
	Name   string  `json:"name,omitempty"`
	Edge   Edge    `json:"edge"`
	Offset float64 `json:"offset"`
}

type jsonCheck struct {
	LeftUnique  bool `json:"left_unique"`
	RightUnique bool `json:"right_unique"`
}

// RenderJSON exports l as a pretty-printed JSON document. Offsets are
// written as already-rounded percentages.
//
// RenderJSON does not modify l and is safe to call concurrently.
func RenderJSON(l Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Device: r.device,
		Total:  len(l),
		Left:   l.Count(Left),
		Right:  l.Count(Right),
		Ports:  make([]jsonPort, 0, len(l)),
	}
	for _, p := range l {
		jp := jsonPort{
			Index:  p.Index,
			Number: p.PortNumber,
			Edge:   p.Edge,
			Offset: p.Offset,
		}
		if r.names != nil {
			jp.Name = r.names(p.Index)
		}
		out.Ports = append(out.Ports, jp)
	}
	if r.check {
		c := Verify(l)
		out.Check = &jsonCheck{LeftUnique: c.LeftUnique, RightUnique: c.RightUnique}
	}

	return json.MarshalIndent(out, "", "  ")
}

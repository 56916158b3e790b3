// Package pkg provides the libraries behind the portlayout CLI.
//
//   - [ports]: places ports on the left and right edges of a diagram node
//     and verifies that no two ports on one edge overlap
//   - [device]: port counts and interface names per device type
//   - [config]: optional TOML run configuration
//   - [errors]: structured error codes
//   - [buildinfo]: version information injected at build time
//
// Quick start:
//
//	l, err := ports.Calculate(4)
//	if err != nil {
//	    return err
//	}
//	if c := ports.Verify(l); !c.OK() {
//	    // ports on one edge share an offset
//	}
package pkg

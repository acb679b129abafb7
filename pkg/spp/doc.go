// Package spp holds the strip-packing problem's data model: items,
// placements, layouts, and the instance/solution types used for I/O.
// It defines the CDEIndex and HazardSink interfaces that the concrete
// collision-detection engine (pkg/cde) implements, so this package
// never needs to import its own collaborators.
package spp

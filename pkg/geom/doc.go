// Package geom provides the rigid-transform and polygon primitives shared
// by the separation engine. Polygons are represented with paulmach/orb
// types so the rest of gonest can lean on orb's planar helpers instead of
// reinventing ring/bound arithmetic.
package geom

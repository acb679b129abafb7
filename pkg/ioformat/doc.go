// Package ioformat reads and writes the JSON and SVG documents
// gonest's CLI consumes and produces: instance definitions, optional
// warm-start solutions, and a pretty-printed result plus an optional
// SVG rendering of the packed strip.
package ioformat

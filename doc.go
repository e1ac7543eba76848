// Package uistyle provides the style data model of a retained-mode UI toolkit.
//
// # Overview
//
// uistyle carries two primitives that the style computation stage produces
// and the layout and paint stages consume:
//
//   - style.Value: a tagged scalar holding one CSS-like property (a length in
//     px/pt/dip/sp, a scale, a color, an image reference, a keyword, an int,
//     a bool or a string).
//   - graph.Graph: a bitmap that either owns its pixel storage or quotes a
//     rectangle of another Graph without copying.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/uistyle/color"
//		"github.com/gogpu/uistyle/geom"
//		"github.com/gogpu/uistyle/graph"
//		"github.com/gogpu/uistyle/style"
//	)
//
//	sheet, _ := graph.New(256, 256, color.TypeARGB8888)
//	icon, _ := sheet.Quote(geom.Rect{X: 32, Y: 0, Width: 32, Height: 32}, false)
//
//	bg := style.Image(icon)
//	img, err := bg.AsImage()
//
// # Architecture
//
// The module is organized into:
//   - color: pixel formats, 32-bit BGRA color, pack/unpack, palettes
//   - geom: integer and float rectangles
//   - graph: owning and quoting pixel buffers, image I/O, pooling
//   - style: style values, keywords, wide strings, composite aggregates
//   - gpu: texture upload descriptors for graphs
//   - profile: per-frame profiling records
//
// # Concurrency
//
// Graph and style.Value are single-owner types without internal locking.
// Quotes alias the storage of their source on purpose; callers serialize
// writes to overlapping regions.
package uistyle

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

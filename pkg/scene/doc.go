// Package scene reads diagram descriptions from TOML and draws them.
//
// A scene lists character rows, overlays and free-standing primitives with
// absolute coordinates:
//
//	width = 700
//	height = 250
//
//	[[rows]]
//	x = 50
//	y = 100
//	chars = "ABRACADABRA"
//	highlight = [3]
//
//	  [[rows.arrows]]
//	  position = 3
//	  caption = "i"
//
//	[[overlays]]
//	x = 50
//	y = 100
//	color = "#ffcc00"
//	alpha = 0.4
//	positions = [0, 7]
//
// [Decode] and [Load] apply defaults and reject unknown keys, unknown
// numbering modes and malformed colours with coded errors from pkg/errors.
// [Scene.Draw] paints rows first, then brackets, arrows and labels, then
// overlays, each list in file order.
package scene

// Package canvas implements the drawing-operation pipeline of an offscreen
// 2D raster canvas, following the behavioral contract of the HTML canvas
// 2D drawing model.
//
// A Context accumulates vector paths and style state and translates
// high-level drawing calls (fill, stroke, clip, image blits, image-data
// transfer, text) into primitive paint operations against a Painter, the
// rasterization backend. SoftPainter is the built-in software backend;
// any other backend can be injected with WithPainter.
//
//	ctx := canvas.NewContext(320, 240)
//	ctx.SetFillStyle("#3366cc")
//	ctx.FillRect(20, 20, 120, 80)
//	img, err := ctx.GetImageData(0, 0, 320, 240)
//
// The context is single-threaded: it is exclusively owned by one caller
// and performs no internal locking. Hosts that share a context across
// goroutines must serialize access themselves.
package canvas

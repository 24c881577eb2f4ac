package canvas

// recorder is a Painter that captures emitted operations for inspection.
type recorder struct {
	transform Matrix
	saves     int
	restores  int
	resets    int

	clears  []Rect
	clips   []recordedClip
	fills   []recordedFill
	strokes []recordedStroke
	bitmaps []recordedBitmap
}

type recordedClip struct {
	path      *Path2D
	rule      FillRule
	transform Matrix
}

type recordedFill struct {
	op        FillOp
	transform Matrix
}

type recordedStroke struct {
	op        StrokeOp
	transform Matrix
}

type recordedBitmap struct {
	op        BitmapOp
	transform Matrix
}

func newRecorder() *recorder {
	return &recorder{transform: Identity()}
}

func (r *recorder) Save()    { r.saves++ }
func (r *recorder) Restore() { r.restores++ }

func (r *recorder) SetTransform(m Matrix) { r.transform = m }

func (r *recorder) Clip(path *Path2D, rule FillRule) {
	r.clips = append(r.clips, recordedClip{path: path, rule: rule, transform: r.transform})
}

func (r *recorder) ClearRect(rect Rect) { r.clears = append(r.clears, rect) }

func (r *recorder) FillPath(op FillOp) {
	r.fills = append(r.fills, recordedFill{op: op, transform: r.transform})
}

func (r *recorder) StrokePath(op StrokeOp) {
	r.strokes = append(r.strokes, recordedStroke{op: op, transform: r.transform})
}

func (r *recorder) DrawBitmap(op BitmapOp) {
	r.bitmaps = append(r.bitmaps, recordedBitmap{op: op, transform: r.transform})
}

func (r *recorder) Reset() {
	r.resets++
	r.transform = Identity()
}

// recordingContext pairs a context with its recorder.
func recordingContext(w, h int) (*Context, *recorder) {
	r := newRecorder()
	c := NewContext(w, h, WithPainter(func(*Surface) Painter { return r }))
	return c, r
}

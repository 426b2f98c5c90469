package gel

import (
	"image/color"
	"log/slog"
	"strconv"

	"github.com/gelscope/gel/internal/intensity"
	"github.com/gelscope/gel/internal/transform"
)

// Op is one edit applied to a session's current raster. The op set is
// closed: AdjustOp, RotateOp, FlipOp and InvertOp all feed the single
// [Session.Apply] entry point.
type Op interface {
	// String names the op for diagnostics.
	String() string

	applyTo(r *Raster) *Raster
}

// AdjustOp applies the window + contrast + brightness intensity transform.
type AdjustOp struct {
	Window Window
	Adjust Adjust
}

func (o AdjustOp) applyTo(r *Raster) *Raster {
	return intensity.Apply(r, o.Window, o.Adjust)
}

func (o AdjustOp) String() string { return "adjust" }

// RotateOp rotates by Angle degrees, positive counter-clockwise. Expand
// grows the canvas to hold the whole rotated image; with Expand false the
// source canvas is kept and the corners clip. A nil Fill paints exposed
// regions black. The zero RotateOp is a no-op.
type RotateOp struct {
	Angle  float64
	Expand bool
	Fill   color.Color
}

func (o RotateOp) applyTo(r *Raster) *Raster {
	return transform.Rotate(r, o.Angle, o.Expand, o.Fill)
}

func (o RotateOp) String() string {
	return "rotate " + strconv.FormatFloat(o.Angle, 'g', -1, 64)
}

// FlipOp mirrors around Axis.
type FlipOp struct {
	Axis FlipAxis
}

func (o FlipOp) applyTo(r *Raster) *Raster {
	return Flip(r, o.Axis)
}

func (o FlipOp) String() string { return "flip " + o.Axis.String() }

// InvertOp inverts every sample within its native range.
type InvertOp struct{}

func (InvertOp) applyTo(r *Raster) *Raster { return intensity.Invert(r) }

func (InvertOp) String() string { return "invert" }

// Session is a non-destructive edit session over one loaded raster. It
// keeps the pristine original and a current raster with every applied op
// folded in; ops always transform the current raster, never re-run from
// the original. A Session is not safe for concurrent use.
type Session struct {
	original *Raster
	current  *Raster
}

// NewSession starts an edit session. The session takes ownership of r as
// the pristine original; callers must not write through r afterwards.
func NewSession(r *Raster) *Session {
	return &Session{
		original: r,
		current:  r.Clone(),
	}
}

// Original returns the untouched raster the session was created with.
// It is shared, not copied; treat it as read-only.
func (s *Session) Original() *Raster { return s.original }

// Current returns the raster with every applied op folded in.
// It is replaced wholesale by each op, so a caller may hold the previous
// value across an Apply without seeing it change.
func (s *Session) Current() *Raster { return s.current }

// Apply folds one op into the current raster. Ops compose cumulatively:
// each transforms the output of the one before it.
func (s *Session) Apply(op Op) {
	s.current = op.applyTo(s.current)

	w, h := s.current.Bounds()
	Logger().Debug("session op",
		slog.String("op", op.String()),
		slog.Int("width", w),
		slog.Int("height", h),
		slog.String("format", s.current.Format().String()),
	)
}

// Reset discards every applied op and restores the current raster to a
// fresh copy of the original.
func (s *Session) Reset() {
	s.current = s.original.Clone()
	Logger().Debug("session reset")
}

// Adjust applies the intensity transform to the current raster.
func (s *Session) Adjust(w Window, a Adjust) {
	s.Apply(AdjustOp{Window: w, Adjust: a})
}

// AutoLevel windows the current raster to the middle of its histogram, as
// computed by [AutoLevel], with no brightness or contrast change.
func (s *Session) AutoLevel() {
	s.Apply(AdjustOp{Window: AutoLevel(s.current), Adjust: Neutral})
}

// Rotate rotates the current raster by angle degrees, positive
// counter-clockwise. Defaults and options are those of [Rotate].
func (s *Session) Rotate(angle float64, opts ...RotateOption) {
	o := defaultRotateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s.Apply(RotateOp{Angle: angle, Expand: o.expand, Fill: o.fill})
}

// Flip mirrors the current raster around the given axis.
func (s *Session) Flip(axis FlipAxis) {
	s.Apply(FlipOp{Axis: axis})
}

// Invert inverts the current raster within its native range.
func (s *Session) Invert() {
	s.Apply(InvertOp{})
}

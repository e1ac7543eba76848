// Package profile records per-frame timing counters of a UI main loop.
//
// A Profile covers one measuring window, typically one second, and holds
// at most Cap frames:
//
//	p := profile.New(0)
//	p.Begin(time.Now())
//	for running {
//		f, err := p.NewFrame()
//		if errors.Is(err, profile.ErrCapacity) {
//			break
//		}
//		f.RenderCount++
//		...
//	}
//	p.End(time.Now())
//	logger.Info("frame stats", "profile", p)
package profile

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/uistyle"
)

// MaxFramesPerSecond is the frame rate the default capacity is sized for.
const MaxFramesPerSecond = 120

// ErrCapacity is returned by NewFrame when the profile is full.
var ErrCapacity = errors.New("profile: frame capacity reached")

// WidgetTasks counts the widget work done in one frame.
type WidgetTasks struct {
	Time          time.Duration
	UpdateCount   int
	RefreshCount  int
	LayoutCount   int
	UserTaskCount int
	DestroyCount  int
	DestroyTime   time.Duration
}

// Frame holds the counters of one frame.
type Frame struct {
	TimersCount int
	TimersTime  time.Duration

	EventsCount int
	EventsTime  time.Duration

	RenderCount int
	RenderTime  time.Duration
	PresentTime time.Duration

	WidgetTasks WidgetTasks
}

// Busy returns the time the frame spent doing work.
func (f *Frame) Busy() time.Duration {
	return f.TimersTime + f.EventsTime + f.RenderTime + f.PresentTime +
		f.WidgetTasks.Time + f.WidgetTasks.DestroyTime
}

func (f *Frame) add(o *Frame) {
	f.TimersCount += o.TimersCount
	f.TimersTime += o.TimersTime
	f.EventsCount += o.EventsCount
	f.EventsTime += o.EventsTime
	f.RenderCount += o.RenderCount
	f.RenderTime += o.RenderTime
	f.PresentTime += o.PresentTime

	w, ow := &f.WidgetTasks, &o.WidgetTasks
	w.Time += ow.Time
	w.UpdateCount += ow.UpdateCount
	w.RefreshCount += ow.RefreshCount
	w.LayoutCount += ow.LayoutCount
	w.UserTaskCount += ow.UserTaskCount
	w.DestroyCount += ow.DestroyCount
	w.DestroyTime += ow.DestroyTime
}

// Profile is a bounded sequence of frames. It is not safe for concurrent
// use.
type Profile struct {
	Start  time.Time
	Finish time.Time

	frames []Frame
}

// New returns a profile holding up to capacity frames, or
// MaxFramesPerSecond frames when capacity is not positive.
func New(capacity int) *Profile {
	if capacity <= 0 {
		capacity = MaxFramesPerSecond
	}
	return &Profile{frames: make([]Frame, 0, capacity)}
}

// Cap returns the frame capacity.
func (p *Profile) Cap() int { return cap(p.frames) }

// Len returns the number of recorded frames.
func (p *Profile) Len() int { return len(p.frames) }

// Begin drops recorded frames and starts a window at now.
func (p *Profile) Begin(now time.Time) {
	p.Reset()
	p.Start = now
}

// End closes the window at now.
func (p *Profile) End(now time.Time) {
	p.Finish = now
}

// Reset drops recorded frames and clears the window.
func (p *Profile) Reset() {
	clear(p.frames)
	p.frames = p.frames[:0]
	p.Start, p.Finish = time.Time{}, time.Time{}
}

// NewFrame appends a zeroed frame and returns it for the caller to fill.
// The pointer stays valid until Begin or Reset.
func (p *Profile) NewFrame() (*Frame, error) {
	if len(p.frames) == cap(p.frames) {
		uistyle.Logger().Warn("profile: frame capacity reached", "cap", cap(p.frames))
		return nil, ErrCapacity
	}
	p.frames = append(p.frames, Frame{})
	return &p.frames[len(p.frames)-1], nil
}

// Frames returns a copy of the recorded frames.
func (p *Profile) Frames() []Frame {
	return append([]Frame(nil), p.frames...)
}

// Totals sums every counter over the recorded frames.
func (p *Profile) Totals() Frame {
	var t Frame
	for i := range p.frames {
		t.add(&p.frames[i])
	}
	return t
}

// Duration returns the length of a closed window, or zero.
func (p *Profile) Duration() time.Duration {
	if p.Start.IsZero() || p.Finish.Before(p.Start) {
		return 0
	}
	return p.Finish.Sub(p.Start)
}

// FrameTime returns the average wall time per frame over the window.
func (p *Profile) FrameTime() time.Duration {
	if len(p.frames) == 0 {
		return 0
	}
	return p.Duration() / time.Duration(len(p.frames))
}

// LogValue implements slog.LogValuer.
func (p *Profile) LogValue() slog.Value {
	t := p.Totals()
	return slog.GroupValue(
		slog.Int("frames", len(p.frames)),
		slog.Duration("duration", p.Duration()),
		slog.Duration("frame_time", p.FrameTime()),
		slog.Int("render_count", t.RenderCount),
		slog.Duration("render_time", t.RenderTime),
		slog.Int("events_count", t.EventsCount),
		slog.Int("timers_count", t.TimersCount),
	)
}

// MaxFrameDuration returns the frame budget at fps frames per second,
// rounded to whole milliseconds.
func MaxFrameDuration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	ms := math.Round(1000 / float64(fps))
	return time.Duration(ms) * time.Millisecond
}

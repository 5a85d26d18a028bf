package sketch

// DrawFunc is a setup, draw or resize callback.
type DrawFunc func(ctx *Context)

// Options configure a sketch instance.
type Options struct {
	Settings Settings
	// Width and Height override the container size when non-zero.
	Width  int
	Height int
	// Panel creates an on-canvas control panel when non-nil.
	Panel *PanelOptions
	Seed  int64
}

// Sketch is a setup/draw/resize triple ready to be instantiated on a host.
type Sketch struct {
	opts   Options
	setup  DrawFunc
	draw   DrawFunc
	resize DrawFunc
}

// New composes the callbacks into a sketch. resize may be nil.
func New(opts Options, setup, draw, resize DrawFunc) Sketch {
	return Sketch{opts: opts, setup: setup, draw: draw, resize: resize}
}

// Options returns the options the sketch was built with.
func (s Sketch) Options() Options { return s.opts }

// Instantiate creates the canvas, sizes it to the host container, builds
// the control panel and runs setup once. The new instance is looping.
func (s Sketch) Instantiate(host Host) *Instance {
	ctx := newContext(s.opts.Settings, s.opts.Seed)
	inst := &Instance{sketch: s, host: host, ctx: ctx, looping: true}

	ww, wh := host.WindowSize()
	ctx.Surface = host.NewSurface(ww, wh)
	inst.updateDimensions()
	ctx.Surface.Resize(ctx.Width, ctx.Height)

	if s.opts.Panel != nil {
		ctx.Panel = NewPanel(*s.opts.Panel)
	}
	if s.setup != nil {
		s.setup(ctx)
	}
	return inst
}

// Instance is one live copy of a sketch.
type Instance struct {
	sketch  Sketch
	host    Host
	ctx     *Context
	looping bool
	removed bool
}

// Context exposes the instance state.
func (in *Instance) Context() *Context { return in.ctx }

// Frame advances the sketch by one frame when it is looping and reports
// whether the draw callback ran.
func (in *Instance) Frame(input Input) bool {
	if !in.looping {
		return false
	}
	return in.Redraw(input)
}

// Redraw runs the draw callback once regardless of the loop state.
func (in *Instance) Redraw(input Input) bool {
	if in.removed || in.sketch.draw == nil {
		return false
	}
	in.ctx.Input = input
	in.ctx.readings = in.ctx.readings[:0]
	in.sketch.draw(in.ctx)
	in.ctx.Frame++
	return true
}

// Resize recomputes the container dimensions, resizes the canvas and calls
// the resize callback.
func (in *Instance) Resize() {
	if in.removed {
		return
	}
	in.updateDimensions()
	in.ctx.Surface.Resize(in.ctx.Width, in.ctx.Height)
	if in.sketch.resize != nil {
		in.sketch.resize(in.ctx)
	}
}

func (in *Instance) Loop()           { in.looping = true }
func (in *Instance) NoLoop()         { in.looping = false }
func (in *Instance) IsLooping() bool { return in.looping && !in.removed }

// Remove tears the instance down. Further frames are no-ops.
func (in *Instance) Remove() {
	if in.removed {
		return
	}
	in.removed = true
	in.looping = false
	if in.ctx.Panel != nil {
		in.ctx.Panel.Hide()
	}
	in.ctx.controls = nil
}

// Removed reports whether Remove has been called.
func (in *Instance) Removed() bool { return in.removed }

// updateDimensions never fails: an unresolvable container falls back to
// the window size.
func (in *Instance) updateDimensions() {
	w, h, ok := in.host.ContainerSize()
	if !ok || w <= 0 || h <= 0 {
		w, h = in.host.WindowSize()
	}
	if in.sketch.opts.Width > 0 {
		w = in.sketch.opts.Width
	}
	if in.sketch.opts.Height > 0 {
		h = in.sketch.opts.Height
	}
	in.ctx.Width, in.ctx.Height = w, h
}

// Runner owns at most one instance at a time.
type Runner struct {
	host    Host
	current *Instance
}

func NewRunner(host Host) *Runner {
	return &Runner{host: host}
}

// Mount removes the current instance, if any, before instantiating sk.
// The looping state of the previous instance carries over.
func (r *Runner) Mount(sk Sketch) *Instance {
	looping := true
	if r.current != nil {
		looping = r.current.looping
		r.current.Remove()
		r.current = nil
	}
	inst := sk.Instantiate(r.host)
	inst.looping = looping
	r.current = inst
	return inst
}

// Unmount removes the current instance.
func (r *Runner) Unmount() {
	if r.current != nil {
		r.current.Remove()
		r.current = nil
	}
}

func (r *Runner) Current() *Instance { return r.current }

// SetPlaying starts or stops the frame loop of the current instance.
func (r *Runner) SetPlaying(playing bool) {
	if r.current == nil {
		return
	}
	if playing {
		r.current.Loop()
	} else {
		r.current.NoLoop()
	}
}

// Frame advances the current instance.
func (r *Runner) Frame(input Input) bool {
	if r.current == nil {
		return false
	}
	return r.current.Frame(input)
}

// Resize forwards a host resize to the current instance.
func (r *Runner) Resize() {
	if r.current != nil {
		r.current.Resize()
	}
}

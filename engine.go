package textlayout

import (
	"math"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/textlayout/cache"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/internal/logging"
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/segment"
	"github.com/gogpu/textlayout/shape"
)

// Engine lays text out and caches the results.
//
// Engine is safe for concurrent use. Layouts it returns are shared between
// callers and must not be modified.
type Engine struct {
	cache    *cache.LayoutCache
	shaper   shape.Shaper
	fallback shape.Fallback
	shaping  bool

	// inflight collapses concurrent computations of the same key.
	inflight singleflight.Group
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		cache:   o.cache,
		shaper:  o.shaper,
		shaping: o.shaping,
	}
	if e.cache == nil {
		e.cache = cache.New(o.capacity)
	}
	if e.shaper == nil {
		e.shaper = shape.NewEngine()
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// Default returns the process-wide engine used by Layout.
func Default() *Engine {
	return defaultEngine()
}

// Layout lays text out on the default engine.
func Layout(text string, f fonts.Font, p Params) *layout.TextLayout {
	return Default().Layout(text, f, p)
}

// Cache returns the engine's layout cache.
func (e *Engine) Cache() *cache.LayoutCache {
	return e.cache
}

// Layout returns the layout of text in font f.
//
// An empty text yields one empty paragraph one line tall; a nil font yields
// one empty paragraph of zero height. Layout never fails: glyphs the font
// lacks come out as glyph index 0.
//
// Results are cached under Params.Hash unless p carries HintSkipShaping or
// HintNoCache. A cache hit returns the very layout stored before.
func (e *Engine) Layout(text string, f fonts.Font, p Params) *layout.TextLayout {
	p.normalize()

	if f == nil {
		return layout.Empty(0, p.BaseDirection)
	}
	if text == "" {
		return layout.Empty(f.LineSpacing(p.Size), p.BaseDirection)
	}
	if p.Hints&HintSkipShaping != 0 {
		return e.compute(text, f, &p, false)
	}
	if p.Hints&HintNoCache != 0 {
		return e.compute(text, f, &p, e.shaping)
	}

	key := p.Hash(text, f.ID())
	if l, ok := e.cache.Get(key); ok {
		return l
	}
	v, _, _ := e.inflight.Do(strconv.FormatUint(key, 16), func() (any, error) {
		l := e.compute(text, f, &p, e.shaping)
		e.cache.Put(key, l)
		return l, nil
	})
	return v.(*layout.TextLayout)
}

// LineBreaks returns the wrap information of every paragraph of text, the
// rune offsets at which its lines start. It is the layout of text with
// the glyphs left out.
func (e *Engine) LineBreaks(text string, f fonts.Font, p Params) []layout.WrapInfo {
	l := e.Layout(text, f, p)
	infos := make([]layout.WrapInfo, len(l.Paragraphs))
	for i := range l.Paragraphs {
		infos[i] = l.Paragraphs[i].WrapInfo
		infos[i].Wraps = slices.Clone(infos[i].Wraps)
	}
	return infos
}

// compute runs the layout pipeline: segmentation, shaping, wrapping and
// stacking of the paragraphs.
func (e *Engine) compute(text string, f fonts.Font, p *Params, shaped bool) *layout.TextLayout {
	runes := []rune(text)
	seg := segment.Split(runes, p.BaseDirection)

	out := &layout.TextLayout{
		Paragraphs:        make([]layout.ShapedTextParagraph, 0, len(seg.Paragraphs)),
		Direction:         seg.Direction,
		HasMixedDirection: seg.Mixed(),
	}

	var sh shape.Shaper = e.shaper
	linear := true
	switch {
	case !shaped:
		logging.Logger().Debug("textlayout: shaping disabled, using fallback", "len", len(runes))
	case f.ShapingFont() == nil:
		logging.Logger().Debug("textlayout: font not shapeable, using fallback", "font", f.ID())
	default:
		linear = false
	}
	if linear {
		// The fallback shaper lays everything out left to right.
		sh = e.fallback
		out.Direction = layout.DirectionLTR
		out.HasMixedDirection = false
	}

	req := shape.Request{
		Text:      runes,
		Font:      f,
		Style:     p.glyphStyle(),
		TabWidth:  p.TabWidth,
		TabOffset: p.tabOffset(),
		NoKerning: p.Hints&HintNoKerning != 0,
	}
	lineHeight := f.LineSpacing(p.Size)

	var origin, size layout.Vec2
	for i, para := range seg.Paragraphs {
		req.Paragraph = para
		sp := sh.Shape(&req)

		vertical := para.Direction.IsVertical() && !linear
		if p.wraps() && !vertical {
			opts := layout.WrapOptions{
				Mode:            p.WrapMode,
				Width:           p.WrapWidth,
				KeepIndentation: p.KeepIndentation,
				LineHeight:      lineHeight,
			}
			if i == 0 {
				opts.InitialXOffset = p.InitialXOffset
			}
			layout.Wrap(&sp, runes, opts)
		}

		for j := range sp.Glyphs {
			sp.Glyphs[j].Position = sp.Glyphs[j].Position.Add(origin)
		}
		// Vertical paragraphs are columns side by side; horizontal ones
		// stack downwards.
		if vertical {
			origin.X += sp.Size.X
			size.X += sp.Size.X
			size.Y = max(size.Y, sp.Size.Y)
		} else {
			origin.Y += sp.Size.Y
			size.X = max(size.X, sp.Size.X)
			size.Y += sp.Size.Y
		}
		out.Paragraphs = append(out.Paragraphs, sp)
	}

	out.Size = layout.Vec2{X: math.Ceil(size.X), Y: math.Ceil(size.Y)}
	return out
}

package textlayout_test

import (
	"fmt"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/layout"
)

func ExampleLayout() {
	f := fonts.Basic()

	l := textlayout.Layout("Hello\nworld", f, textlayout.DefaultParams())
	fmt.Println("paragraphs:", len(l.Paragraphs))
	fmt.Println("glyphs:", l.GlyphCount())
	fmt.Printf("size: %vx%v\n", l.Size.X, l.Size.Y)
	// Output:
	// paragraphs: 2
	// glyphs: 10
	// size: 35x26
}

func ExampleEngine_LineBreaks() {
	e := textlayout.New(textlayout.WithCacheCapacity(16))

	p := textlayout.DefaultParams()
	p.WrapMode = layout.WrapWord
	p.WrapWidth = 28 // four 7px cells

	for _, info := range e.LineBreaks("aaaa aaaa", fonts.Basic(), p) {
		fmt.Println(info.Wraps)
	}
	// Output:
	// [0 5]
}

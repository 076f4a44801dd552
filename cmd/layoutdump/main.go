// Command layoutdump lays out a string and prints the positioned glyphs.
//
// Usage:
//
//	layoutdump [flags] text...
//
// With no text arguments the text is read from standard input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/layout"
)

type glyphDump struct {
	Index  int     `json:"index" yaml:"index"`
	Glyph  uint32  `json:"glyph" yaml:"glyph"`
	Rune   string  `json:"rune" yaml:"rune"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	AdvX   float64 `json:"advX" yaml:"advX"`
	AdvY   float64 `json:"advY,omitempty" yaml:"advY,omitempty"`
	Dir    string  `json:"dir" yaml:"dir"`
	Script string  `json:"script" yaml:"script"`
}

type paragraphDump struct {
	Start  int         `json:"start" yaml:"start"`
	End    int         `json:"end" yaml:"end"`
	Width  float64     `json:"width" yaml:"width"`
	Height float64     `json:"height" yaml:"height"`
	Wraps  []int       `json:"wraps" yaml:"wraps,flow"`
	Glyphs []glyphDump `json:"glyphs" yaml:"glyphs"`
}

type layoutDump struct {
	Width      float64         `json:"width" yaml:"width"`
	Height     float64         `json:"height" yaml:"height"`
	Direction  string          `json:"direction" yaml:"direction"`
	Mixed      bool            `json:"mixed" yaml:"mixed"`
	Paragraphs []paragraphDump `json:"paragraphs" yaml:"paragraphs"`
}

func main() {
	var (
		fontPath = flag.String("font", "", "TTF/OTF font file (default Go Regular)")
		size     = flag.Float64("size", textlayout.DefaultSize, "character size in pixels")
		style    = flag.String("style", "", "style flags, e.g. bold|italic")
		wrap     = flag.String("wrap", "nowrap", "wrap mode: nowrap, word or char")
		width    = flag.Float64("width", 0, "wrap width in pixels")
		indent   = flag.Bool("indent", false, "keep indentation on wrapped lines")
		dir      = flag.String("dir", "auto", "base direction: auto, ltr, rtl, ttb or btt")
		tabWidth = flag.Int("tab", layout.DefaultTabWidth, "tab width in spaces")
		noShape  = flag.Bool("noshape", false, "use the fallback shaper")
		format   = flag.String("format", "text", "output format: text, json or yaml")
	)
	flag.Parse()

	f, err := loadFont(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	text, err := readText(flag.Args())
	if err != nil {
		log.Fatalf("Failed to read text: %v", err)
	}

	p := textlayout.DefaultParams()
	p.Size = *size
	p.Style = textlayout.ParseStyle(*style)
	p.WrapMode = layout.ParseWrapMode(*wrap)
	p.WrapWidth = *width
	p.KeepIndentation = *indent
	p.BaseDirection = parseDirection(*dir)
	p.TabWidth = *tabWidth
	if *noShape {
		p.Hints |= textlayout.HintSkipShaping
	}

	l := textlayout.New(textlayout.WithCacheCapacity(1)).Layout(text, f, p)
	d := dump(l, []rune(text))

	switch strings.ToLower(*format) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		err = enc.Encode(d)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = printText(os.Stdout, d)
	}
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func loadFont(path string) (fonts.Font, error) {
	if path == "" {
		return fonts.NewSource(goregular.TTF)
	}
	return fonts.NewSourceFromFile(path)
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func parseDirection(s string) layout.Direction {
	switch strings.ToLower(s) {
	case "ltr":
		return layout.DirectionLTR
	case "rtl":
		return layout.DirectionRTL
	case "ttb":
		return layout.DirectionTTB
	case "btt":
		return layout.DirectionBTT
	default:
		return layout.DirectionUnspecified
	}
}

func dump(l *layout.TextLayout, text []rune) layoutDump {
	d := layoutDump{
		Width:     l.Size.X,
		Height:    l.Size.Y,
		Direction: l.Direction.String(),
		Mixed:     l.HasMixedDirection,
	}
	for _, para := range l.Paragraphs {
		pd := paragraphDump{
			Start:  para.Start,
			End:    para.End,
			Width:  para.Size.X,
			Height: para.Size.Y,
			Wraps:  para.WrapInfo.Wraps,
		}
		for _, g := range para.Glyphs {
			pd.Glyphs = append(pd.Glyphs, glyphDump{
				Index:  g.StringIndex,
				Glyph:  uint32(g.GlyphIndex),
				Rune:   string(text[g.StringIndex]),
				X:      g.Position.X,
				Y:      g.Position.Y,
				AdvX:   g.Advance.X,
				AdvY:   g.Advance.Y,
				Dir:    g.Direction.String(),
				Script: g.Script.String(),
			})
		}
		d.Paragraphs = append(d.Paragraphs, pd)
	}
	return d
}

func printText(w io.Writer, d layoutDump) error {
	if _, err := fmt.Fprintf(w, "size %vx%v direction %s mixed %v\n",
		d.Width, d.Height, d.Direction, d.Mixed); err != nil {
		return err
	}
	for i, p := range d.Paragraphs {
		if _, err := fmt.Fprintf(w, "paragraph %d [%d,%d) %vx%v wraps %v\n",
			i, p.Start, p.End, p.Width, p.Height, p.Wraps); err != nil {
			return err
		}
		for _, g := range p.Glyphs {
			if _, err := fmt.Fprintf(w, "  %4d %q gid=%d pos=(%.2f,%.2f) adv=(%.2f,%.2f) %s %s\n",
				g.Index, g.Rune, g.Glyph, g.X, g.Y, g.AdvX, g.AdvY, g.Dir, g.Script); err != nil {
				return err
			}
		}
	}
	return nil
}

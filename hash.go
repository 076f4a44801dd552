package textlayout

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
)

// Hash returns the cache key of laying out text with the font identified
// by fontID under p. It is FNV-1a over the text and every field of p.
// Settings that cannot change the result are normalized first.
func (p Params) Hash(text string, fontID uint64) uint64 {
	p.normalize()

	h := fnv.New64a()
	var buf [112]byte
	b := binary.LittleEndian.AppendUint64(buf[:0], uint64(len(text)))
	_, _ = h.Write(b) // fnv.Write never returns an error
	_, _ = io.WriteString(h, text)

	b = buf[:0]
	b = binary.LittleEndian.AppendUint64(b, fontID)
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(p.Size))
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Style))
	b = binary.LittleEndian.AppendUint64(b, uint64(p.TabWidth))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(p.OutlineThickness))
	if p.TabOffset != nil {
		b = append(b, 1)
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(*p.TabOffset))
	} else {
		b = append(b, 0)
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Hints&outputHints))
	b = binary.LittleEndian.AppendUint64(b, uint64(p.BaseDirection))
	b = append(b, byte(p.WrapMode))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(p.WrapWidth))
	if p.KeepIndentation {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(p.InitialXOffset))
	_, _ = h.Write(b)

	return h.Sum64()
}

package styles

import (
	"bytes"
	"encoding/xml"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce sync.Once
	fontData *opentype.Font
	fontErr  error
)

var (
	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Face returns a Go Regular face at size pixels. Faces are cached per size.
// Go Regular stands in for the SVG font family when measuring and when
// rasterising.
func Face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontData, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	faces[size] = f
	return f, nil
}

// MeasureText returns the advance width of s in pixels at the given size.
// If the font cannot be loaded it falls back to an average glyph width.
func MeasureText(s string, size float64) float64 {
	face, err := Face(size)
	if err != nil {
		return float64(utf8.RuneCountInString(s)) * size * 0.55
	}
	facesMu.Lock()
	defer facesMu.Unlock()
	adv := font.MeasureString(face, s)
	return float64(adv) / 64
}

// WrapText breaks s into lines no wider than maxWidth at the given size.
// Lines break between words; a word wider than maxWidth is split between
// characters. Every line holds at least one character, so a very narrow
// width still terminates.
func WrapText(s string, maxWidth, size float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var cur string
	for _, w := range words {
		candidate := w
		if cur != "" {
			candidate = cur + " " + w
		}
		if MeasureText(candidate, size) <= maxWidth {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		if MeasureText(w, size) <= maxWidth {
			cur = w
			continue
		}
		parts := splitChars(w, maxWidth, size)
		lines = append(lines, parts[:len(parts)-1]...)
		cur = parts[len(parts)-1]
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func splitChars(word string, maxWidth, size float64) []string {
	var parts []string
	var b strings.Builder
	for _, r := range word {
		if b.Len() > 0 && MeasureText(b.String()+string(r), size) > maxWidth {
			parts = append(parts, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

// EscapeXML returns s with the characters special to XML text and attribute
// values replaced by entities.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Package pptx writes minimal PresentationML (.pptx) files. It is the
// only package that knows the binary presentation format; callers hand
// it titles, bullet blocks and optional images and receive one ZIP
// container per call.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
)

// Layout selects one of the two supported aspect presets.
type Layout int

const (
	Layout16x9 Layout = iota
	Layout4x3
)

// Slide dimensions in EMU (914400 per inch): 10x5.625in and 10x7.5in,
// matching the viewer's slide formats.
func (l Layout) size() (cx, cy int) {
	if l == Layout4x3 {
		return 9144000, 6858000
	}
	return 9144000, 5143500
}

// Slide is one page handed to the writer.
type Slide struct {
	Title    string
	Subtitle string // only rendered on cover slides
	Bullets  []string
	Image    []byte // optional picture, placed on the right half
	ImageExt string // "png" or "jpeg"; defaults to png
	Light    bool   // white text instead of black
	Cover    bool   // centered title layout, subtitle instead of bullets
}

// Presentation accumulates slides and serializes them on demand.
type Presentation struct {
	layout Layout
	slides []Slide
}

func New(layout Layout) *Presentation {
	return &Presentation{layout: layout}
}

func (p *Presentation) AddSlide(s Slide) {
	if s.ImageExt == "" {
		s.ImageExt = "png"
	}
	p.slides = append(p.slides, s)
}

// SlideCount reports how many slides have been added.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// WriteTo serializes the presentation. Callers wanting the no-partial-
// output guarantee should write into a buffer and only persist it on a
// nil error.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	if len(p.slides) == 0 {
		return 0, fmt.Errorf("pptx: presentation has no slides")
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	files := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", p.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML},
		{"docProps/app.xml", appPropsXML},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, s := range p.slides {
		n := i + 1
		files = append(files,
			struct{ name, body string }{fmt.Sprintf("ppt/slides/slide%d.xml", n), p.slideXML(s)},
			struct{ name, body string }{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(s, n)},
		)
	}

	for _, f := range files {
		fw, err := zw.Create(f.name)
		if err != nil {
			return cw.n, fmt.Errorf("pptx: create %s: %w", f.name, err)
		}
		if _, err := io.WriteString(fw, f.body); err != nil {
			return cw.n, fmt.Errorf("pptx: write %s: %w", f.name, err)
		}
	}

	for i, s := range p.slides {
		if len(s.Image) == 0 {
			continue
		}
		name := fmt.Sprintf("ppt/media/image%d.%s", i+1, s.ImageExt)
		fw, err := zw.Create(name)
		if err != nil {
			return cw.n, fmt.Errorf("pptx: create %s: %w", name, err)
		}
		if _, err := fw.Write(s.Image); err != nil {
			return cw.n, fmt.Errorf("pptx: write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("pptx: finalize archive: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

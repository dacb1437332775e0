package pptx

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	t.Run("empty presentation refused", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := New(Layout16x9).WriteTo(&buf)
		assert.Error(t, err)
	})

	t.Run("counts bytes written", func(t *testing.T) {
		p := New(Layout16x9)
		p.AddSlide(Slide{Title: "Cover", Cover: true})

		var buf bytes.Buffer
		n, err := p.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)
	})

	t.Run("image slides get a media part", func(t *testing.T) {
		p := New(Layout4x3)
		p.AddSlide(Slide{Title: "Cover", Cover: true})
		p.AddSlide(Slide{Title: "Team", Bullets: []string{"Us"}, Image: []byte{0x89, 0x50}})

		var buf bytes.Buffer
		_, err := p.WriteTo(&buf)
		require.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.NoError(t, err)

		found := false
		for _, f := range zr.File {
			if f.Name == "ppt/media/image2.png" {
				found = true
			}
		}
		assert.True(t, found, "expected embedded image part")
	})

	t.Run("layout changes slide size", func(t *testing.T) {
		wideCx, wideCy := Layout16x9.size()
		boxCx, boxCy := Layout4x3.size()
		assert.Equal(t, wideCx, boxCx)
		assert.Greater(t, boxCy, wideCy)
	})
}

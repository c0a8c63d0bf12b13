package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"main.rs", Rust},
		{"src/lib/engine.cpp", CPP},
		{"include/engine.HPP", CPP},
		{"scripts/build.sh", Shell},
		{"deploy/Dockerfile", Dockerfile},
		{"Makefile", Makefile},
		{"notes.xyz", Unknown},
		{"README", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ForPath(tt.path))
		})
	}
}

func TestUnknownHasNoProfile(t *testing.T) {
	_, ok := Unknown.Profile()
	assert.False(t, ok)
	assert.False(t, Unknown.Known())
	assert.Equal(t, "Unknown", Unknown.String())
}

func TestEveryLanguageHasAProfile(t *testing.T) {
	for _, lang := range extensions {
		p, ok := lang.Profile()
		require.True(t, ok, "language %d has no profile", lang)
		assert.NotEmpty(t, p.LineComment)
		assert.Equal(t, p.Name, lang.String())
	}
}

func TestProfileMatching(t *testing.T) {
	p, ok := Rust.Profile()
	require.True(t, ok)

	assert.True(t, p.IsLineComment("// comment"))
	assert.True(t, p.IsLineComment("    // indented"))
	assert.False(t, p.IsLineComment(`let url = "http://example.com";`))

	rest, ok := p.OpensBlock("  /* start */ tail")
	assert.True(t, ok)
	assert.Equal(t, " start */ tail", rest)

	_, ok = p.OpensBlock("x = 1; /* trailing")
	assert.False(t, ok)

	assert.True(t, p.ClosesBlock("end */"))
	assert.True(t, p.ClosesBlock("a */ b = 1; /* c */ d"))
	assert.False(t, p.ClosesBlock("still inside"))
	assert.False(t, p.ClosesBlock("a */ /* b"))
	assert.False(t, p.ClosesBlock("a */ x /* b */ y /* c"))
}

func TestProfileWithoutBlock(t *testing.T) {
	p, ok := Python.Profile()
	require.True(t, ok)
	assert.Empty(t, p.BlockBegin)

	_, opened := p.OpensBlock(`"""docstring"""`)
	assert.False(t, opened)
	assert.False(t, p.ClosesBlock("anything"))
}

func TestMarkersAreQuoted(t *testing.T) {
	p, ok := Haskell.Profile()
	require.True(t, ok)

	_, opened := p.OpensBlock("{- block")
	assert.True(t, opened)
	assert.True(t, p.ClosesBlock("done -}"))
	assert.False(t, p.IsLineComment("x - y"))
}

func TestIsIgnored(t *testing.T) {
	assert.True(t, IsIgnored("logo.PNG", nil))
	assert.True(t, IsIgnored("dist/app.tar", nil))
	assert.True(t, IsIgnored("report.docx", nil))
	assert.False(t, IsIgnored("main.go", nil))
	assert.False(t, IsIgnored("Makefile", nil))

	assert.True(t, IsIgnored("data.parquet", []string{".parquet"}))
	assert.True(t, IsIgnored("data.lock", []string{"LOCK"}))
}

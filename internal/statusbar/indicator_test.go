package statusbar

import (
	"strings"
	"testing"

	"govctl/internal/toolchain"
)

func TestFormat(t *testing.T) {
	v := toolchain.Version{Major: 2, Minor: 0, Patch: 0, Platform: "darwin/amd64"}
	if got := Format(v); got != "Go 2.0.0" {
		t.Fatalf("Format = %q, want %q", got, "Go 2.0.0")
	}
}

func TestTextAlwaysStartsWithGo(t *testing.T) {
	i := New()
	if !strings.HasPrefix(i.Text(), "Go") {
		t.Fatalf("initial text %q lacks Go prefix", i.Text())
	}
	i.Update(toolchain.Version{Major: 1, Minor: 13, Patch: 12})
	if i.Text() != "Go 1.13.12" {
		t.Fatalf("text = %q", i.Text())
	}
	i.SetNotFound()
	if i.Text() != "Go (not found)" {
		t.Fatalf("text = %q", i.Text())
	}
	if !strings.HasPrefix(i.Text(), "Go") {
		t.Fatalf("not-found text %q lacks Go prefix", i.Text())
	}
}

func TestSelectRoundTrip(t *testing.T) {
	i := New()
	if _, ok := i.Selected(); ok {
		t.Fatal("fresh indicator should have no selection")
	}
	opt := toolchain.Option{Label: "Go 3.0.0", BinPath: "/tmp/gopath/bin/go3"}
	i.Select(opt)
	got, ok := i.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.Label != opt.Label || got.BinPath != opt.BinPath {
		t.Fatalf("round trip mismatch: %+v != %+v", got, opt)
	}
	if !got.Equal(opt) {
		t.Fatal("Equal should hold after round trip")
	}
}

func TestDefaultLifecycle(t *testing.T) {
	DisposeDefault()
	a := Default()
	if a == nil {
		t.Fatal("Default returned nil")
	}
	if Default() != a {
		t.Fatal("Default should return the same instance")
	}
	a.Update(toolchain.Version{Major: 1, Minor: 22, Patch: 3})

	DisposeDefault()
	b := Default()
	if b == a {
		t.Fatal("expected a fresh indicator after dispose")
	}
	if b.Text() != "Go" {
		t.Fatalf("recreated indicator text = %q", b.Text())
	}
	DisposeDefault()
}

func TestRenderContainsText(t *testing.T) {
	i := New()
	i.Update(toolchain.Version{Major: 2, Minor: 0, Patch: 0})
	if out := i.Render(40); !strings.Contains(out, "Go 2.0.0") {
		t.Fatalf("render output %q missing text", out)
	}
}

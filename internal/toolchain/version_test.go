package toolchain

import "testing"

func TestParseGoVersion(t *testing.T) {
	cases := []struct {
		in       string
		want     string
		platform string
	}{
		{"go version go1.13.12 darwin/amd64", "1.13.12", "darwin/amd64"},
		{"go version go2.0.0 darwin/amd64", "2.0.0", "darwin/amd64"},
		{"go version go3.0.0 darwin/amd64", "3.0.0", "darwin/amd64"},
		{"go version go1.21 linux/amd64", "1.21.0", "linux/amd64"},
		{"go version go1.22.3 windows/amd64\n", "1.22.3", "windows/amd64"},
		{"go version go1.19.5 linux/arm64\nextra output\n", "1.19.5", "linux/arm64"},
	}
	for _, c := range cases {
		v, err := ParseGoVersion(c.in)
		if err != nil {
			t.Fatalf("ParseGoVersion(%q) error: %v", c.in, err)
		}
		if got := v.String(); got != c.want {
			t.Fatalf("ParseGoVersion(%q) = %s, want %s", c.in, got, c.want)
		}
		if v.Platform != c.platform {
			t.Fatalf("ParseGoVersion(%q) platform = %s, want %s", c.in, v.Platform, c.platform)
		}
	}
}

func TestParseGoVersionPrerelease(t *testing.T) {
	v, err := ParseGoVersion("go version go1.22rc1 linux/arm64")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if v.Major != 1 || v.Minor != 22 || v.Patch != 0 || v.Suffix != "rc1" {
		t.Fatalf("unexpected fields: %+v", v)
	}
}

func TestParseGoVersionRejectsGarbage(t *testing.T) {
	for _, in := range []string{
		"",
		"not a version",
		"go version devel +abc123 linux/amd64",
		"version go1.2.3 linux/amd64",
	} {
		if _, err := ParseGoVersion(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

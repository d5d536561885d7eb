package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pwtable/pwtable/internal/entropy"
	"github.com/pwtable/pwtable/internal/settings"
	"github.com/pwtable/pwtable/internal/table"
)

func le(vals ...uint32) []byte {
	var b []byte
	for _, v := range vals {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return b
}

// fixedTable builds a 3×2 table over "<&b" whose cells read "<&b" / "b&<".
func fixedTable(t *testing.T) *table.Table {
	t.Helper()
	s := settings.Default()
	s.Width, s.Height = 3, 2
	s.Preset = "alphanumeric"
	s.CharsetSuffix = "<&"
	s.Emoji = false
	cs, err := s.CharacterSet()
	if err != nil {
		t.Fatal(err)
	}
	lt, amp := uint32(cs.Len()-2), uint32(cs.Len()-1)
	src := entropy.NewReader(bytes.NewReader(le(lt, amp, 1, 1, amp, lt)), 1)
	defer src.Close()
	tbl, err := table.Build(src, s)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, fixedTable(t), Text, Options{}); err != nil {
		t.Fatal(err)
	}
	want := "\tA\tB\tC\n" +
		"0\t<\t&\tb\n" +
		"1\tb\t&\t<\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Render(text): diff (-want +got):\n%s", diff)
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, fixedTable(t), HTML, Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<html lang="en">`,
		`<th class="row-odd col-odd"></th>`,
		`<th class="row-odd col-even">A</th>`,
		`<th class="row-even col-odd">0</th>`,
		`<td class="row-even col-even">&lt;</td>`,
		`<td class="row-odd col-odd">&amp;</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render(html) does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<td class=\"row-even col-even\"><</td>") {
		t.Errorf("Render(html) did not escape cell contents")
	}
}

func TestRenderHTMLEmojiClass(t *testing.T) {
	src := entropy.New()
	defer src.Close()
	s := settings.Default()
	s.Width, s.Height = 4, 4
	tbl, err := table.Build(src, s)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, tbl, HTML, Options{}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), " emoji\""); got == 0 {
		t.Errorf("Render(html) marked no emoji cells")
	}
}

func TestRenderTerminal(t *testing.T) {
	tbl := fixedTable(t)

	var plain bytes.Buffer
	if err := Render(&plain, tbl, Terminal, Options{Color: false}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("Render(terminal) without color emitted escape codes:\n%s", plain.String())
	}
	for _, want := range []string{" A ", " B ", " C ", " 0 ", " 1 ", " < ", " & "} {
		if !strings.Contains(plain.String(), want) {
			t.Errorf("Render(terminal) does not contain %q:\n%s", want, plain.String())
		}
	}

	var colored bytes.Buffer
	if err := Render(&colored, tbl, Terminal, Options{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("Render(terminal) with color emitted no escape codes")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Errorf("ParseFormat(pdf) succeeded")
	}
}

func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]Format{
		"table.html":     HTML,
		"TABLE.HTM":      HTML,
		"table.txt":      Text,
		"table":          Text,
		"dir.html/x.tsv": Text,
	} {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	tbl := fixedTable(t)
	dir := t.TempDir()
	txt := filepath.Join(dir, "table.txt")
	html := filepath.Join(dir, "table.html")
	if err := WriteFiles(context.Background(), tbl, []string{txt, html}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(txt)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "\tA\tB\tC\n") {
		t.Errorf("%s has unexpected contents:\n%s", txt, b)
	}
	b, err = os.ReadFile(html)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "<!DOCTYPE html>") {
		t.Errorf("%s has unexpected contents:\n%s", html, b)
	}
	if runtime.GOOS != "windows" {
		st, err := os.Stat(txt)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := st.Mode().Perm(), os.FileMode(0600); got != want {
			t.Errorf("%s has mode %v, want %v", txt, got, want)
		}
	}
}

func TestWriteFilesError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "table.txt")
	if err := WriteFiles(context.Background(), fixedTable(t), []string{missing}); err == nil {
		t.Errorf("WriteFiles into a missing directory succeeded")
	}
}

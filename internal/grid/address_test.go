package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/pwtable/pwtable/internal/entropy"
)

func TestColumnLabel(t *testing.T) {
	for _, tt := range []struct {
		index, digits int
		want          string
	}{
		{0, 1, "A"},
		{25, 1, "Z"},
		{26, 1, "BA"},
		{0, 2, "AA"},
		{25, 2, "AZ"},
		{26, 2, "BA"},
		{27, 2, "BB"},
		{675, 2, "ZZ"},
		{676, 2, "BAA"},
		{3, 3, "AAD"},
		{0, 0, "A"},
		{7, 0, "H"},
		{Header, 2, ""},
	} {
		if got := ColumnLabel(tt.index, tt.digits); got != tt.want {
			t.Errorf("ColumnLabel(%d, %d) = %q, want %q", tt.index, tt.digits, got, tt.want)
		}
	}
}

func TestMinDigits(t *testing.T) {
	for _, tt := range []struct {
		width, want int
	}{
		{1, 1},
		{25, 1},
		{26, 2},
		{30, 2},
		{675, 2},
		{676, 3},
		{1000, 3},
	} {
		if got := MinDigits(tt.width); got != tt.want {
			t.Errorf("MinDigits(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestParity(t *testing.T) {
	for _, tt := range []struct {
		index int
		want  Parity
	}{
		{0, Even},
		{1, Odd},
		{2, Even},
		{Header, Odd},
		{-2, Even},
	} {
		if got := ParityOf(tt.index); got != tt.want {
			t.Errorf("ParityOf(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
	if got, want := Odd.String(), "odd"; got != want {
		t.Errorf("Odd.String() = %q, want %q", got, want)
	}
}

func TestLayout(t *testing.T) {
	l, err := NewLayout(30, 3, language.English)
	if err != nil {
		t.Fatal(err)
	}
	cols := l.ColumnLabels()
	if got, want := len(cols), 30; got != want {
		t.Fatalf("len(ColumnLabels()) = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]string{"AA", "AB", "AC"}, cols[:3]); diff != "" {
		t.Errorf("ColumnLabels: diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"AZ", "BA", "BB", "BC", "BD"}, cols[25:]); diff != "" {
		t.Errorf("ColumnLabels: diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "1", "2"}, l.RowLabels()); diff != "" {
		t.Errorf("RowLabels: diff (-want +got):\n%s", diff)
	}
	if got := l.RowLabel(Header); got != "" {
		t.Errorf("RowLabel(Header) = %q, want empty", got)
	}
	if got := l.ColumnLabel(Header); got != "" {
		t.Errorf("ColumnLabel(Header) = %q, want empty", got)
	}
}

func TestLayoutLocale(t *testing.T) {
	en, err := NewLayout(1, 2000, language.English)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := en.RowLabel(1234), "1,234"; got != want {
		t.Errorf("RowLabel(1234) [en] = %q, want %q", got, want)
	}
	de, err := NewLayout(1, 2000, language.German)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := de.RowLabel(1234), "1.234"; got != want {
		t.Errorf("RowLabel(1234) [de] = %q, want %q", got, want)
	}
	var zero Layout
	if got, want := zero.RowLabel(7), "7"; got != want {
		t.Errorf("zero Layout RowLabel(7) = %q, want %q", got, want)
	}
}

func TestNewLayoutInvalid(t *testing.T) {
	for _, dim := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewLayout(dim[0], dim[1], language.English); !errors.Is(err, entropy.ErrInvalidArgument) {
			t.Errorf("NewLayout(%d, %d) = %v, want ErrInvalidArgument", dim[0], dim[1], err)
		}
	}
}

package keypad

import (
	"reflect"
	"testing"
)

func TestParseLines(t *testing.T) {
	got, err := Parse(example)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]Direction{
		{Up, Left, Left},
		{Right, Right, Down, Down, Down},
		{Left, Up, Right, Down, Left},
		{Up, Up, Up, Up, Down},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v got %v", want, got)
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	got, err := Parse("\nUD\r\n\n  \nLR\n")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]Direction{{Up, Down}, {Left, Right}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v got %v", want, got)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("")
	if err != nil || len(got) != 0 {
		t.Fatalf("want nothing got %v %v", got, err)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, in := range []string{"UX", "ud", "U1\nD", "UL L"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/GheorgheLuca1/satkit/internal/cnf"
)

func TestWitnessLine(t *testing.T) {
	asn := cnf.Assignment{1: true, 2: false, 4: false}

	// Variable 3 is unconstrained and defaults to true.
	got := witnessLine(asn, 4)
	want := "v 1 -2 3 -4 0"
	if got != want {
		t.Errorf("witnessLine() = %q, want %q", got, want)
	}
}

func TestReadManual(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("1 -2 0\n2 3\n\nignored\n"))

	got, err := readManual(in)
	if err != nil {
		t.Fatalf("readManual(): unexpected error: %s", err)
	}
	want := cnf.Formula{cnf.New(-2, 1), cnf.New(2, 3)}
	if len(got) != len(want) {
		t.Fatalf("readManual() = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("clause %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadManual_rejectsBadInput(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("1 x 0\n"))
	if _, err := readManual(in); err == nil {
		t.Error("readManual(): want error on non-integer token")
	}

	in = bufio.NewScanner(strings.NewReader("0\n"))
	if _, err := readManual(in); err == nil {
		t.Error("readManual(): want error on empty clause")
	}
}

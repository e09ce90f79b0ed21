package timetabling

import "testing"

func TestParsePrintModeAcceptsAllSpellings(t *testing.T) {
	cases := map[string]PrintMode{
		"NONE": PrintNone, "none": PrintNone, "": PrintNone,
		"BEST": PrintBest, "best": PrintBest,
		"ALL": PrintAll, "all": PrintAll,
	}
	for s, want := range cases {
		got, err := ParsePrintMode(s)
		if err != nil {
			t.Fatalf("ParsePrintMode(%q) returned error: %v", s, err)
		}
		if got != want {
			t.Fatalf("ParsePrintMode(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParsePrintModeRejectsUnknown(t *testing.T) {
	if _, err := ParsePrintMode("SOME"); err == nil {
		t.Fatalf("expected an error for an unrecognized print-solutions mode")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseBuilt.String() != "BUILT" || PhaseSolving.String() != "SOLVING" || PhaseDone.String() != "DONE" {
		t.Fatalf("unexpected Phase.String() outputs")
	}
	if Phase(99).String() != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN for an out-of-range Phase")
	}
}

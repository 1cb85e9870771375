package names

import "testing"

func TestObjNameKnown(t *testing.T) {
	cases := map[int]string{
		0:  "gun",
		2:  "tank",
		31: "scout",
	}
	for idx, want := range cases {
		if got := ObjName(idx); got != want {
			t.Errorf("ObjName(%d) = %q, want %q", idx, got, want)
		}
	}
}

func TestObjNameFallback(t *testing.T) {
	if got, want := ObjName(999), "chocks_999"; got != want {
		t.Errorf("ObjName(999) = %q, want %q", got, want)
	}
}

func TestObjNameExtraKnownAndFallback(t *testing.T) {
	if got, want := ObjNameExtra(46), "bridge"; got != want {
		t.Errorf("ObjNameExtra(46) = %q, want %q", got, want)
	}
	// Not in extraNames, but present in baseNames.
	if got, want := ObjNameExtra(2), "tank"; got != want {
		t.Errorf("ObjNameExtra(2) = %q, want %q", got, want)
	}
	// Present in neither.
	if got, want := ObjNameExtra(999), "chocks_999"; got != want {
		t.Errorf("ObjNameExtra(999) = %q, want %q", got, want)
	}
}

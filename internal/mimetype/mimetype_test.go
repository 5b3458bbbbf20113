package mimetype

import "testing"

func TestKnownTypeStrings(t *testing.T) {
	cases := map[Type]string{
		ApplicationJSON: "application/json",
		TextHTML:        "text/html",
		ImagePNG:        "image/png",
	}
	for mt, want := range cases {
		if got := mt.String(); got != want {
			t.Fatalf("%v.String() = %q, want %q", mt, got, want)
		}
	}
}

func TestUnknownTypeFallsBackToOctetStream(t *testing.T) {
	var unmapped Type = 999
	if got := unmapped.String(); got != "application/octet-stream" {
		t.Fatalf("unmapped.String() = %q, want octet-stream fallback", got)
	}
}

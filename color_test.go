package polyfill

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ff0000", Red, true},
		{"00ff00", Green, true},
		{"#0000FF", Blue, true},
		{"#ff0", Yellow, true},
		{"#1a2b3c", Color{0x1a, 0x2b, 0x3c}, true},
		{"ff0", Color{}, false},
		{"", Color{}, false},
		{"#12345", Color{}, false},
		{"#gg0000", Color{}, false},
		{"#+12345", Color{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("%q: unexpected error state %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorString(t *testing.T) {
	c := Color{R: 0x01, G: 0xab, B: 0xff}
	if s := c.String(); s != "#01abff" {
		t.Errorf("got %q", s)
	}
	back, err := ParseColor(c.String())
	if err != nil || back != c {
		t.Errorf("round trip gives %v, %v", back, err)
	}
}

func TestColorJSON(t *testing.T) {
	in := map[string]Color{"fill": Yellow}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"fill":"#ffff00"}` {
		t.Errorf("got %s", data)
	}

	var out map[string]Color
	if err := json.Unmarshal([]byte(`{"x":"#123"}`), &out); err != nil {
		t.Fatal(err)
	}
	if out["x"] != (Color{0x11, 0x22, 0x33}) {
		t.Errorf("got %v", out["x"])
	}

	if err := json.Unmarshal([]byte(`{"x":"red"}`), &out); err == nil {
		t.Error("invalid color accepted")
	}
}

func TestColorModel(t *testing.T) {
	got := color.RGBAModel.Convert(Color{R: 10, G: 20, B: 30})
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

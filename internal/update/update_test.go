package update

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.3.0", "1.2.9", 1},
		{"0.9", "1.0", -1},
		{"1.2.3", "1.2", 1},
		{"2", "1.9.9", 1},
	}
	for _, tc := range cases {
		if got := compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("compare(%q,%q)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if normalize(" v1.2.3 ") != "1.2.3" {
		t.Fatal("expected v-prefix and whitespace stripped")
	}
}

func TestCheck_SkipsWithNoNetwork(t *testing.T) {
	latest, newer, err := Check("1.0.0", true)
	if err != nil || newer || latest != "" {
		t.Fatalf("expected silent skip, got %q %v %v", latest, newer, err)
	}
}

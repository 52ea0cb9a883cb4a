package utils

import (
	"reflect"
	"testing"
)

func TestParseIDList(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		want    []uint
		wantErr bool
	}{
		{"empty", nil, []uint{}, false},
		{"single", []string{"3"}, []uint{3}, false},
		{"many", []string{"3", "1", "2"}, []uint{3, 1, 2}, false},
		{"duplicates collapse", []string{"2", "2", "5"}, []uint{2, 5}, false},
		{"non-integer", []string{"2", "x"}, nil, true},
		{"zero", []string{"0"}, nil, true},
		{"negative", []string{"-1"}, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIDList(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseIDList(%v) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIDList(%v) error: %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseIDList(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestUniqueUint(t *testing.T) {
	got := UniqueUint([]uint{1, 2, 2, 3, 1})
	want := []uint{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueUint = %v, want %v", got, want)
	}
}

func TestSanitizeStripsScript(t *testing.T) {
	in := `<p>hello</p><script>alert(1)</script>`
	if got := Sanitize(in); got != "<p>hello</p>" {
		t.Errorf("Sanitize(%q) = %q", in, got)
	}
	if got := SanitizePlain(`<b>Ada</b>`); got != "Ada" {
		t.Errorf("SanitizePlain = %q, want Ada", got)
	}
}

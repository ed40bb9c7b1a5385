package bytestr

import (
	"math"
	"reflect"
	"testing"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		skip  int
		want  []string
	}{
		{"exact multiple", "abcdef123", 3, 0, []string{"abc", "def", "123"}},
		{"skip separators", "abc,def,123", 3, 1, []string{"abc", "def", "123"}},
		{"short last chunk", "abcdefg", 3, 0, []string{"abc", "def", "g"}},
		{"width larger than subject", "ab", 5, 0, []string{"ab"}},
		{"width one", "abc", 1, 0, []string{"a", "b", "c"}},
		{"skip past end", "abcdef", 2, 10, []string{"ab"}},
		{"skip leaves partial", "ab--cd--e", 2, 2, []string{"ab", "cd", "e"}},
		{"zero width", "abc", 0, 0, nil},
		{"negative width", "abc", -1, 0, nil},
		{"negative skip", "abcd", 2, -5, []string{"ab", "cd"}},
		{"empty subject", "", 3, 0, nil},
		{"huge skip", "abcdef", 2, math.MaxInt, []string{"ab"}},
		{"huge width", "abcdef", math.MaxInt, 1, []string{"abcdef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunk(tt.s, tt.width, tt.skip)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunk(%q, %d, %d) = %q, want %q", tt.s, tt.width, tt.skip, got, tt.want)
			}
		})
	}
}

func FuzzChunk(f *testing.F) {
	f.Add("abcdef123", 3)
	f.Add("", 1)
	f.Add("x", 7)

	f.Fuzz(func(t *testing.T, s string, width int) {
		if width <= 0 || width > 1<<16 {
			return
		}
		chunks := Chunk(s, width, 0)
		var joined []byte
		for i, c := range chunks {
			if len(c) == 0 || len(c) > width {
				t.Fatalf("chunk %d has length %d, width %d", i, len(c), width)
			}
			if i < len(chunks)-1 && len(c) != width {
				t.Fatalf("inner chunk %d has length %d, want %d", i, len(c), width)
			}
			joined = append(joined, c...)
		}
		if string(joined) != s {
			t.Fatalf("concatenated chunks = %q, want %q", joined, s)
		}
	})
}

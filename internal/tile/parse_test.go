package tile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `Tile 7:
#.#
..#
###

Tile 12:
...
.#.
...
`
	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("Parse() returned %d tiles, want 2", len(s))
	}
	if got := s[7].String(); got != "#.#\n..#\n###" {
		t.Errorf("tile 7 = %q", got)
	}
	if got := s[12].Count(); got != 1 {
		t.Errorf("tile 12 has %d on pixels, want 1", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptySet},
		{"missing header", "#.#\n", ErrSyntax},
		{"bad id", "Tile x:\n#.\n.#\n", ErrSyntax},
		{"missing colon", "Tile 3\n#.\n.#\n", ErrSyntax},
		{"bad pixel", "Tile 3:\n#o\n.#\n", ErrSyntax},
		{"ragged", "Tile 3:\n#.\n.#.\n", ErrSyntax},
		{"header only", "Tile 3:\n", ErrSyntax},
		{"duplicate", "Tile 3:\n#.\n.#\n\nTile 3:\n..\n..\n", ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	s := loadExample(t)

	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Tile 1171:\n####...##.\n") {
		t.Errorf("Write() does not start with the lowest tile:\n%s", buf.String()[:40])
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse(Write()): %v", err)
	}
	if len(back) != len(s) {
		t.Fatalf("round trip has %d tiles, want %d", len(back), len(s))
	}
	for id, g := range s {
		if !back[id].Equal(g) {
			t.Errorf("tile %d changed in round trip", id)
		}
	}
}

package game

import (
	"errors"
	"testing"

	"github.com/spacehole-rogue/starfield/internal/world"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in   string
		verb Verb
		id   world.ID
	}{
		{"focus:12", VerbFocus, 12},
		{"move group:3", VerbMoveGroup, 3},
		{"manage group:7", VerbManageGroup, 7},
		{Command(VerbDetail, 42), VerbDetail, 42},
	}
	for _, tc := range cases {
		verb, id, err := ParseCommand(tc.in)
		if err != nil || verb != tc.verb || id != tc.id {
			t.Errorf("ParseCommand(%q): got=(%q, %d, %v) want=(%q, %d)", tc.in, verb, id, err, tc.verb, tc.id)
		}
	}
}

func TestParseCommandMalformed(t *testing.T) {
	for _, in := range []string{"", "focus", "focus:", "focus:x", "warp:3", ":3", "focus: 3"} {
		if _, _, err := ParseCommand(in); !errors.Is(err, ErrMalformedCommand) {
			t.Errorf("ParseCommand(%q): got err=%v want ErrMalformedCommand", in, err)
		}
	}
}

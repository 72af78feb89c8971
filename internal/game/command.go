package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spacehole-rogue/starfield/internal/world"
)

// ErrMalformedCommand is returned for a sidebar command that does not parse.
var ErrMalformedCommand = errors.New("malformed command")

// Verb is the action part of a sidebar command string "<verb>:<id>".
type Verb string

const (
	VerbFocus       Verb = "focus"
	VerbMoveGroup   Verb = "move group"
	VerbManageGroup Verb = "manage group"
	VerbDetail      Verb = "detail"
)

func (v Verb) valid() bool {
	switch v {
	case VerbFocus, VerbMoveGroup, VerbManageGroup, VerbDetail:
		return true
	}
	return false
}

// Command encodes a sidebar button action.
func Command(v Verb, id world.ID) string {
	return fmt.Sprintf("%s:%d", v, id)
}

// ParseCommand splits a command string into its verb and object id.
func ParseCommand(s string) (Verb, world.ID, error) {
	verb, rawID, ok := strings.Cut(s, ":")
	if !ok {
		return "", 0, fmt.Errorf("%q: missing ':': %w", s, ErrMalformedCommand)
	}
	if !Verb(verb).valid() {
		return "", 0, fmt.Errorf("%q: unknown verb %q: %w", s, verb, ErrMalformedCommand)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return "", 0, fmt.Errorf("%q: bad id: %w", s, ErrMalformedCommand)
	}
	return Verb(verb), world.ID(id), nil
}

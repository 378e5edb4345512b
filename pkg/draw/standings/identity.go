package standings

import (
	"github.com/danehlert/courtline/pkg/draw"
)

// Resolver derives a stable identity string from a side. A Resolver must
// be deterministic: the same side value always yields the same string. An
// empty result means this resolver cannot identify the side and the next
// one in the list is tried.
type Resolver func(s *draw.Side) string

// ByParticipantID identifies a side by its participants' IDs, joined for
// pairs. Partial pairs fall back to whichever ID is present.
func ByParticipantID(s *draw.Side) string {
	switch s.Kind() {
	case draw.SideSingle:
		return s.Player.ID
	case draw.SidePair:
		switch {
		case s.Player.ID != "" && s.Partner.ID != "":
			return s.Player.ID + "+" + s.Partner.ID
		case s.Player.ID != "":
			return s.Player.ID
		default:
			return s.Partner.ID
		}
	default:
		return ""
	}
}

// ByDisplayName identifies a side by its display name.
func ByDisplayName(s *draw.Side) string {
	return s.DisplayName()
}

// BySchool identifies a side by its first participant's school or club
// name. Useful for team events where individual fields are blank.
func BySchool(s *draw.Side) string {
	if s.Kind() == draw.SideEmpty {
		return ""
	}
	if s.Player.School != "" {
		return s.Player.School
	}
	if s.Partner != nil {
		return s.Partner.School
	}
	return ""
}

// DefaultResolvers is the standard priority order: explicit IDs first,
// then display names, then school names. The source data has no canonical
// identity schema, so the engine treats this as an arbitrary but
// deterministic identity function; pass a custom list to NewAggregator to
// override it.
func DefaultResolvers() []Resolver {
	return []Resolver{ByParticipantID, ByDisplayName, BySchool}
}

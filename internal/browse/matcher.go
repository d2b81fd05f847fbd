package browse

import (
	"cmp"
	"slices"
	"strings"

	"artaura/internal/catalog"
)

// MaxMatches caps the community matcher's result list.
const MaxMatches = 4

// MatchArtists keeps the candidates sharing an interest with the selection,
// orders them by match score (highest first, stable on ties) and returns at
// most MaxMatches. Two interests are shared when either contains the other,
// ignoring case. No selection keeps every candidate.
func MatchArtists(candidates []catalog.MatchCandidate, interests []string) []catalog.MatchCandidate {
	out := slices.Clone(candidates)
	if len(interests) > 0 {
		out = slices.DeleteFunc(out, func(c catalog.MatchCandidate) bool {
			return !sharesInterest(c.Interests, interests)
		})
	}
	slices.SortStableFunc(out, func(a, b catalog.MatchCandidate) int {
		return cmp.Compare(b.MatchScore, a.MatchScore)
	})
	if len(out) > MaxMatches {
		out = out[:MaxMatches]
	}
	return out
}

func sharesInterest(have, want []string) bool {
	for _, w := range want {
		w = strings.ToLower(w)
		for _, h := range have {
			h = strings.ToLower(h)
			if strings.Contains(h, w) || strings.Contains(w, h) {
				return true
			}
		}
	}
	return false
}

package store

import "strconv"

// MatchKind discriminates how a task identifier should be matched.
type MatchKind int

const (
	// MatchID matches a task by its numeric id.
	MatchID MatchKind = iota
	// MatchPattern matches tasks whose title contains the pattern.
	MatchPattern
)

// Identifier is a parsed task identifier: either a numeric id or a
// case-sensitive title substring pattern.
type Identifier struct {
	Kind    MatchKind
	ID      int64
	Pattern string
}

// ParseIdentifier parses a raw task identifier. A string that parses as an
// integer matches by id; anything else is treated as a title pattern.
func ParseIdentifier(raw string) Identifier {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Identifier{Kind: MatchID, ID: id}
	}
	return Identifier{Kind: MatchPattern, Pattern: raw}
}

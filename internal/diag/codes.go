package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. The taxonomy is closed: lexical
// codes live in the 1xxx block, structural (tree builder) codes in the
// 2xxx block, and project-manifest codes in the 3xxx block.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownToken       Code = 1001
	LexUnterminatedString Code = 1002

	// Structural
	SynInfo                  Code = 2000
	SynLineTypeUnknown       Code = 2001
	SynUnterminatedConstruct Code = 2002

	// Project manifest
	PrjInfo               Code = 3000
	PrjLineTypeUnknown    Code = 3001
	PrjMalformedReference Code = 3002
	PrjUnknownProjectKind Code = 3003
)

// ID renders the stable short identifier used in golden files and CLI
// output, e.g. "LEX1001".
func (c Code) ID() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("PRJ%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}

func (c Code) String() string {
	switch c {
	case LexInfo:
		return "LexInfo"
	case LexUnknownToken:
		return "LexUnknownToken"
	case LexUnterminatedString:
		return "LexUnterminatedString"
	case SynInfo:
		return "SynInfo"
	case SynLineTypeUnknown:
		return "SynLineTypeUnknown"
	case SynUnterminatedConstruct:
		return "SynUnterminatedConstruct"
	case PrjInfo:
		return "PrjInfo"
	case PrjLineTypeUnknown:
		return "PrjLineTypeUnknown"
	case PrjMalformedReference:
		return "PrjMalformedReference"
	case PrjUnknownProjectKind:
		return "PrjUnknownProjectKind"
	default:
		return "UnknownCode"
	}
}

package token

import "fmt"

// Kind represents the category of a source token. The set is closed:
// one variant per keyword, one per symbol, plus identifiers, literals,
// trivia and the Unknown fallback.
type Kind uint16

const (
	// Unknown marks a byte the lexer could not match; exactly one unit
	// of input per Unknown token, which guarantees forward progress.
	Unknown Kind = iota

	// Identifier is an ASCII letter followed by letters, digits and
	// underscores that did not match any keyword spelling.
	Identifier
	// Number is a numeric literal, including any fractional part,
	// exponent and type suffix character.
	Number
	// StringLiteral is a double-quoted literal, doubled-quote escapes
	// included in the span.
	StringLiteral
	// DateTimeLiteral is an octothorpe-delimited date and/or time.
	DateTimeLiteral

	// Whitespace is a maximal run of spaces and tabs.
	Whitespace
	// Newline is a single "\r\n", "\n" or "\r" sequence.
	Newline
	// EndOfLineComment is a single-quote comment up to (not including)
	// the line terminator.
	EndOfLineComment
	// RemComment is a REM-introduced comment with the same scanning rule.
	RemComment

	kwFirst
	KwAddressOf
	KwAccess
	KwAlias
	KwAnd
	KwAppActivate
	KwAppend
	KwAttribute
	KwAs
	KwBase
	KwBeep
	KwBegin
	KwBinary
	KwBoolean
	KwByRef
	KwByte
	KwByVal
	KwCall
	KwCase
	KwChDir
	KwChDrive
	KwClass
	KwClose
	KwCompare
	KwConst
	KwCurrency
	KwDate
	KwDecimal
	KwDeclare
	KwDefBool
	KwDefByte
	KwDefCur
	KwDefDate
	KwDefDbl
	KwDefDec
	KwDefInt
	KwDefLng
	KwDefObj
	KwDefSng
	KwDefStr
	KwDefVar
	KwDeleteSetting
	KwDim
	KwDouble
	KwDo
	KwEach
	KwElseIf
	KwElse
	KwEmpty
	KwEnd
	KwEnum
	KwEqv
	KwErase
	KwError
	KwEvent
	KwExit
	KwExplicit
	KwFalse
	KwFileCopy
	KwFor
	KwFriend
	KwFunction
	KwGet
	KwGoSub
	KwGoto
	KwIf
	KwImplements
	KwImp
	KwIn
	KwInput
	KwInteger
	KwIs
	KwKill
	KwLen
	KwLet
	KwLib
	KwLine
	KwLock
	KwLoad
	KwUnload
	KwLong
	KwLoop
	KwLSet
	KwMe
	KwMid
	KwMidB
	KwMkDir
	KwModule
	KwMod
	KwName
	KwNew
	KwNext
	KwNot
	KwOutput
	KwNull
	KwObject
	KwOn
	KwOpen
	KwOptional
	KwOption
	KwOr
	KwParamArray
	KwPreserve
	KwPrint
	KwPrivate
	KwProperty
	KwPublic
	KwPut
	KwRaiseEvent
	KwRandom
	KwRandomize
	KwRead
	KwReDim
	KwReset
	KwResume
	KwReturn
	KwRmDir
	KwRSet
	KwSavePicture
	KwSaveSetting
	KwSeek
	KwSelect
	KwSendKeys
	KwSetAttr
	KwSet
	KwSingle
	KwStatic
	KwStep
	KwStop
	KwString
	KwSub
	KwText
	KwDatabase
	KwThen
	KwTime
	KwTo
	KwTrue
	KwType
	KwUnlock
	KwUntil
	KwVariant
	KwVersion
	KwWend
	KwWhile
	KwWidth
	KwWithEvents
	KwWith
	KwWrite
	KwXor
	kwLast

	symFirst
	SymInequality     // <>
	SymLessOrEqual    // <=
	SymGreaterOrEqual // >=
	SymEqual          // =
	SymDollar         // $
	SymUnderscore     // _
	SymAmpersand      // &
	SymPercent        // %
	SymOctothorpe     // #
	SymLess           // <
	SymGreater        // >
	SymLParen         // (
	SymRParen         // )
	SymLBrace         // {
	SymRBrace         // }
	SymComma          // ,
	SymPlus           // +
	SymMinus          // -
	SymStar           // *
	SymBackslash      // \
	SymSlash          // /
	SymDot            // .
	SymColon          // :
	SymCaret          // ^
	SymBang           // !
	SymLBracket       // [
	SymRBracket       // ]
	SymSemicolon      // ;
	SymAt             // @
	symLast
)

// IsKeyword reports whether the kind is a keyword variant.
func (k Kind) IsKeyword() bool {
	return k > kwFirst && k < kwLast
}

// IsSymbol reports whether the kind is a symbol variant.
func (k Kind) IsSymbol() bool {
	return k > symFirst && k < symLast
}

// IsTrivia reports whether the kind carries no grammatical meaning:
// whitespace, newlines and comments. Trivia tokens are still part of
// the stream and the tree; only filtered views drop them.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, EndOfLineComment, RemComment:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the kind is a literal value token.
func (k Kind) IsLiteral() bool {
	switch k {
	case Number, StringLiteral, DateTimeLiteral:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

var kindNames = buildKindNames()

func buildKindNames() map[Kind]string {
	names := map[Kind]string{
		Unknown:          "Unknown",
		Identifier:       "Identifier",
		Number:           "Number",
		StringLiteral:    "StringLiteral",
		DateTimeLiteral:  "DateTimeLiteral",
		Whitespace:       "Whitespace",
		Newline:          "Newline",
		EndOfLineComment: "EndOfLineComment",
		RemComment:       "RemComment",
	}
	for _, e := range Keywords {
		names[e.Kind] = "Kw" + e.Spelling
	}
	for _, e := range Symbols {
		names[e.Kind] = e.Name
	}
	return names
}

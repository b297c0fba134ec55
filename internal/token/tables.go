package token

// KeywordEntry binds a keyword spelling to its token kind.
type KeywordEntry struct {
	Spelling string
	Kind     Kind
}

// SymbolEntry binds a symbol literal to its token kind.
type SymbolEntry struct {
	Literal string
	Name    string
	Kind    Kind
}

// Keywords is the process-wide keyword table, matched case-insensitively
// in declaration order. Order is a correctness invariant: whenever one
// spelling is a textual prefix of another, the longer spelling must be
// listed first so it is attempted first (Double before Do, ElseIf before
// Else, Implements before Imp, Optional before Option, SetAttr before
// Set, WithEvents before With). Built once, never written after
// initialization, safe for unsynchronized concurrent reads.
var Keywords = []KeywordEntry{
	{"AddressOf", KwAddressOf},
	{"Access", KwAccess},
	{"Alias", KwAlias},
	{"And", KwAnd},
	{"AppActivate", KwAppActivate},
	{"Append", KwAppend},
	{"Attribute", KwAttribute},
	{"As", KwAs},
	{"Base", KwBase},
	{"Beep", KwBeep},
	{"Begin", KwBegin},
	{"Binary", KwBinary},
	{"Boolean", KwBoolean},
	{"ByRef", KwByRef},
	{"Byte", KwByte},
	{"ByVal", KwByVal},
	{"Call", KwCall},
	{"Case", KwCase},
	{"ChDir", KwChDir},
	{"ChDrive", KwChDrive},
	{"Class", KwClass},
	{"Close", KwClose},
	{"Compare", KwCompare},
	{"Const", KwConst},
	{"Currency", KwCurrency},
	{"Date", KwDate},
	{"Decimal", KwDecimal},
	{"Declare", KwDeclare},
	{"DefBool", KwDefBool},
	{"DefByte", KwDefByte},
	{"DefCur", KwDefCur},
	{"DefDate", KwDefDate},
	{"DefDbl", KwDefDbl},
	{"DefDec", KwDefDec},
	{"DefInt", KwDefInt},
	{"DefLng", KwDefLng},
	{"DefObj", KwDefObj},
	{"DefSng", KwDefSng},
	{"DefStr", KwDefStr},
	{"DefVar", KwDefVar},
	{"DeleteSetting", KwDeleteSetting},
	{"Dim", KwDim},
	// Double before Do so that `Do` is not selected for `Double`.
	{"Double", KwDouble},
	{"Do", KwDo},
	{"Each", KwEach},
	// ElseIf before Else so that `Else` is not selected for `ElseIf`.
	{"ElseIf", KwElseIf},
	{"Else", KwElse},
	{"Empty", KwEmpty},
	{"End", KwEnd},
	{"Enum", KwEnum},
	{"Eqv", KwEqv},
	{"Erase", KwErase},
	{"Error", KwError},
	{"Event", KwEvent},
	{"Exit", KwExit},
	{"Explicit", KwExplicit},
	{"False", KwFalse},
	{"FileCopy", KwFileCopy},
	{"For", KwFor},
	{"Friend", KwFriend},
	{"Function", KwFunction},
	{"Get", KwGet},
	{"GoSub", KwGoSub},
	{"Goto", KwGoto},
	{"If", KwIf},
	// Implements before Imp so that `Imp` is not selected for `Implements`.
	{"Implements", KwImplements},
	{"Imp", KwImp},
	// Input and Integer before In so that `In` is not selected for either.
	{"Input", KwInput},
	{"Integer", KwInteger},
	{"In", KwIn},
	{"Is", KwIs},
	{"Kill", KwKill},
	{"Len", KwLen},
	{"Let", KwLet},
	{"Lib", KwLib},
	{"Line", KwLine},
	{"Lock", KwLock},
	{"Load", KwLoad},
	{"Unload", KwUnload},
	{"Long", KwLong},
	{"Loop", KwLoop},
	{"LSet", KwLSet},
	{"Me", KwMe},
	// MidB before Mid so that `Mid` is not selected for `MidB`.
	{"MidB", KwMidB},
	{"Mid", KwMid},
	{"MkDir", KwMkDir},
	{"Module", KwModule},
	{"Mod", KwMod},
	{"Name", KwName},
	{"New", KwNew},
	{"Next", KwNext},
	{"Not", KwNot},
	{"Output", KwOutput},
	{"Null", KwNull},
	{"Object", KwObject},
	{"On", KwOn},
	{"Open", KwOpen},
	// Optional before Option so that `Option` is not selected for `Optional`.
	{"Optional", KwOptional},
	{"Option", KwOption},
	{"Or", KwOr},
	{"ParamArray", KwParamArray},
	{"Preserve", KwPreserve},
	{"Print", KwPrint},
	{"Private", KwPrivate},
	{"Property", KwProperty},
	{"Public", KwPublic},
	{"Put", KwPut},
	{"RaiseEvent", KwRaiseEvent},
	// Randomize before Random so that `Random` is not selected for `Randomize`.
	{"Randomize", KwRandomize},
	{"Random", KwRandom},
	{"Read", KwRead},
	{"ReDim", KwReDim},
	{"Reset", KwReset},
	{"Resume", KwResume},
	{"Return", KwReturn},
	{"RmDir", KwRmDir},
	{"RSet", KwRSet},
	{"SavePicture", KwSavePicture},
	{"SaveSetting", KwSaveSetting},
	{"Seek", KwSeek},
	{"Select", KwSelect},
	{"SendKeys", KwSendKeys},
	// SetAttr before Set so that `Set` is not selected for `SetAttr`.
	{"SetAttr", KwSetAttr},
	{"Set", KwSet},
	{"Single", KwSingle},
	{"Static", KwStatic},
	{"Step", KwStep},
	{"Stop", KwStop},
	{"String", KwString},
	{"Sub", KwSub},
	{"Text", KwText},
	{"Database", KwDatabase},
	{"Then", KwThen},
	{"Time", KwTime},
	{"To", KwTo},
	{"True", KwTrue},
	{"Type", KwType},
	{"Unlock", KwUnlock},
	{"Until", KwUntil},
	{"Variant", KwVariant},
	{"Version", KwVersion},
	{"Wend", KwWend},
	{"While", KwWhile},
	// WithEvents before With so that `With` is not selected for `WithEvents`.
	{"WithEvents", KwWithEvents},
	{"With", KwWith},
	{"Write", KwWrite},
	{"Xor", KwXor},
}

// Symbols is the process-wide symbol table, matched case-sensitively in
// declaration order. The two-character operators are listed first so
// "<>" never lexes as "<" followed by ">".
var Symbols = []SymbolEntry{
	{"<>", "SymInequality", SymInequality},
	{"<=", "SymLessOrEqual", SymLessOrEqual},
	{">=", "SymGreaterOrEqual", SymGreaterOrEqual},
	{"=", "SymEqual", SymEqual},
	{"$", "SymDollar", SymDollar},
	{"_", "SymUnderscore", SymUnderscore},
	{"&", "SymAmpersand", SymAmpersand},
	{"%", "SymPercent", SymPercent},
	{"#", "SymOctothorpe", SymOctothorpe},
	{"<", "SymLess", SymLess},
	{">", "SymGreater", SymGreater},
	{"(", "SymLParen", SymLParen},
	{")", "SymRParen", SymRParen},
	{"{", "SymLBrace", SymLBrace},
	{"}", "SymRBrace", SymRBrace},
	{",", "SymComma", SymComma},
	{"+", "SymPlus", SymPlus},
	{"-", "SymMinus", SymMinus},
	{"*", "SymStar", SymStar},
	{"\\", "SymBackslash", SymBackslash},
	{"/", "SymSlash", SymSlash},
	{".", "SymDot", SymDot},
	{":", "SymColon", SymColon},
	{"^", "SymCaret", SymCaret},
	{"!", "SymBang", SymBang},
	{"[", "SymLBracket", SymLBracket},
	{"]", "SymRBracket", SymRBracket},
	{";", "SymSemicolon", SymSemicolon},
	{"@", "SymAt", SymAt},
}

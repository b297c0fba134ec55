package cst

// NodeKind identifies a structural node in the concrete syntax tree.
// The set is closed: statements, expressions, and list nodes that exist
// only to group ordered siblings.
type NodeKind uint8

const (
	KindRoot NodeKind = iota

	// Statements.
	KindAttributeStatement
	KindOptionStatement
	KindSubStatement
	KindFunctionStatement
	KindPropertyStatement
	KindDimStatement
	KindConstStatement
	KindReDimStatement
	KindAssignmentStatement
	KindCallStatement
	KindIfStatement
	KindElseIfClause
	KindElseClause
	KindForStatement
	KindDoStatement
	KindWhileStatement
	KindExitStatement
	KindUnknownStatement

	// Lists.
	KindParameterList
	KindArgumentList
	KindStatementList

	// Expressions.
	KindIdentifierExpression
	KindLiteralExpression
	KindCallExpression
	KindBinaryExpression
	KindUnaryExpression
	KindParenthesizedExpression
	KindMemberAccessExpression

	kindCount
)

var kindNames = [kindCount]string{
	KindRoot:                    "Root",
	KindAttributeStatement:      "AttributeStatement",
	KindOptionStatement:         "OptionStatement",
	KindSubStatement:            "SubStatement",
	KindFunctionStatement:       "FunctionStatement",
	KindPropertyStatement:       "PropertyStatement",
	KindDimStatement:            "DimStatement",
	KindConstStatement:          "ConstStatement",
	KindReDimStatement:          "ReDimStatement",
	KindAssignmentStatement:     "AssignmentStatement",
	KindCallStatement:           "CallStatement",
	KindIfStatement:             "IfStatement",
	KindElseIfClause:            "ElseIfClause",
	KindElseClause:              "ElseClause",
	KindForStatement:            "ForStatement",
	KindDoStatement:             "DoStatement",
	KindWhileStatement:          "WhileStatement",
	KindExitStatement:           "ExitStatement",
	KindUnknownStatement:        "UnknownStatement",
	KindParameterList:           "ParameterList",
	KindArgumentList:            "ArgumentList",
	KindStatementList:           "StatementList",
	KindIdentifierExpression:    "IdentifierExpression",
	KindLiteralExpression:       "LiteralExpression",
	KindCallExpression:          "CallExpression",
	KindBinaryExpression:        "BinaryExpression",
	KindUnaryExpression:         "UnaryExpression",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindMemberAccessExpression:  "MemberAccessExpression",
}

func (k NodeKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "NodeKind(?)"
}

// IsStatement reports whether the kind is a statement node.
func (k NodeKind) IsStatement() bool {
	return k >= KindAttributeStatement && k <= KindUnknownStatement
}

// IsExpression reports whether the kind is an expression node.
func (k NodeKind) IsExpression() bool {
	return k >= KindIdentifierExpression && k <= KindMemberAccessExpression
}

// IsList reports whether the kind groups ordered siblings without
// carrying syntax of its own.
func (k NodeKind) IsList() bool {
	return k == KindParameterList || k == KindArgumentList || k == KindStatementList
}

package parser

// SyntaxKind is the shared vocabulary for lexical tokens and syntax tree
// nodes. It is the contract between the parser, the tree, the typed AST
// layer and every downstream consumer, so values must stay stable.
type SyntaxKind int

const (
	TokenEOF SyntaxKind = iota
	TokenError

	// Trivia
	TokenWhitespace
	TokenComment
	TokenDocComment
	TokenModuleComment

	// Identifiers and literals
	TokenIdent
	TokenUpIdent
	TokenDiscardName
	TokenInt
	TokenFloat
	TokenString
	TokenTrue
	TokenFalse

	// Keywords
	TokenAs
	TokenAssert
	TokenCase
	TokenConst
	TokenFn
	TokenIf
	TokenImport
	TokenLet
	TokenOpaque
	TokenPanic
	TokenPub
	TokenTodo
	TokenType
	TokenUse

	// Punctuation and operators
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenColon
	TokenHash
	TokenBang
	TokenEqual
	TokenEqualEqual
	TokenNotEqual
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	TokenLessDot
	TokenLessEqualDot
	TokenGreaterDot
	TokenGreaterEqualDot
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPlusDot
	TokenMinusDot
	TokenStarDot
	TokenSlashDot
	TokenPercent
	TokenLtGt
	TokenPipe
	TokenVBar
	TokenAmperAmper
	TokenVBarVBar
	TokenLtLt
	TokenGtGt
	TokenDot
	TokenDotDot
	TokenRArrow
	TokenLArrow
	TokenAt

	// Nodes
	NodeError
	NodeSourceFile
	NodeAttribute
	NodeAttributeArg
	NodeFunction
	NodeLambda
	NodeParamList
	NodeParam
	NodeLabel
	NodeName
	NodeTypeName
	NodeNameRef
	NodeModuleName
	NodeBlock
	NodeStmtLet
	NodeStmtExpr
	NodeStmtUse
	NodeUseAssignment
	NodeLiteral
	NodeTuple
	NodeList
	NodeExprSpread
	NodeBitString
	NodeBitStringSegment
	NodeCase
	NodeClause
	NodeAlternativePattern
	NodePatternGuard
	NodeAsPattern
	NodePatternVariable
	NodePatternTuple
	NodePatternList
	NodePatternSpread
	NodePatternConcat
	NodeUnaryPattern
	NodeVariantRef
	NodeVariantRefFieldList
	NodeVariantRefField
	NodeVariantConstructor
	NodeVariable
	NodeExprCall
	NodeArgList
	NodeArg
	NodeFieldAccess
	NodeTupleIndex
	NodeBinaryOp
	NodeUnaryOp
	NodePipe
	NodeHole
	NodeTodo
	NodePanic
	NodeImport
	NodeModulePath
	NodePath
	NodeUnqualifiedImport
	NodeModuleConstant
	NodeConstantTuple
	NodeConstantList
	NodeAdt
	NodeCustomTypeAlias
	NodeVariant
	NodeConstructorFieldList
	NodeConstructorField
	NodeGenericParamList
	NodeFnType
	NodeTupleType
	NodeTypeNameRef
	NodeTypeApplication
	NodeTypeArgList
	NodeTypeArg
	NodeParamTypeList

	syntaxKindCount
)

var syntaxKindNames = map[SyntaxKind]string{
	TokenEOF:             "EOF",
	TokenError:           "ErrorToken",
	TokenWhitespace:      "Whitespace",
	TokenComment:         "Comment",
	TokenDocComment:      "DocComment",
	TokenModuleComment:   "ModuleComment",
	TokenIdent:           "Ident",
	TokenUpIdent:         "UpIdent",
	TokenDiscardName:     "DiscardName",
	TokenInt:             "Int",
	TokenFloat:           "Float",
	TokenString:          "String",
	TokenTrue:            "True",
	TokenFalse:           "False",
	TokenAs:              "as",
	TokenAssert:          "assert",
	TokenCase:            "case",
	TokenConst:           "const",
	TokenFn:              "fn",
	TokenIf:              "if",
	TokenImport:          "import",
	TokenLet:             "let",
	TokenOpaque:          "opaque",
	TokenPanic:           "panic",
	TokenPub:             "pub",
	TokenTodo:            "todo",
	TokenType:            "type",
	TokenUse:             "use",
	TokenLParen:          "(",
	TokenRParen:          ")",
	TokenLBrace:          "{",
	TokenRBrace:          "}",
	TokenLBracket:        "[",
	TokenRBracket:        "]",
	TokenComma:           ",",
	TokenColon:           ":",
	TokenHash:            "#",
	TokenBang:            "!",
	TokenEqual:           "=",
	TokenEqualEqual:      "==",
	TokenNotEqual:        "!=",
	TokenLess:            "<",
	TokenLessEqual:       "<=",
	TokenGreater:         ">",
	TokenGreaterEqual:    ">=",
	TokenLessDot:         "<.",
	TokenLessEqualDot:    "<=.",
	TokenGreaterDot:      ">.",
	TokenGreaterEqualDot: ">=.",
	TokenPlus:            "+",
	TokenMinus:           "-",
	TokenStar:            "*",
	TokenSlash:           "/",
	TokenPlusDot:         "+.",
	TokenMinusDot:        "-.",
	TokenStarDot:         "*.",
	TokenSlashDot:        "/.",
	TokenPercent:         "%",
	TokenLtGt:            "<>",
	TokenPipe:            "|>",
	TokenVBar:            "|",
	TokenAmperAmper:      "&&",
	TokenVBarVBar:        "||",
	TokenLtLt:            "<<",
	TokenGtGt:            ">>",
	TokenDot:             ".",
	TokenDotDot:          "..",
	TokenRArrow:          "->",
	TokenLArrow:          "<-",
	TokenAt:              "@",

	NodeError:                "Error",
	NodeSourceFile:           "SourceFile",
	NodeAttribute:            "Attribute",
	NodeAttributeArg:         "AttributeArg",
	NodeFunction:             "Function",
	NodeLambda:               "Lambda",
	NodeParamList:            "ParamList",
	NodeParam:                "Param",
	NodeLabel:                "Label",
	NodeName:                 "Name",
	NodeTypeName:             "TypeName",
	NodeNameRef:              "NameRef",
	NodeModuleName:           "ModuleName",
	NodeBlock:                "Block",
	NodeStmtLet:              "StmtLet",
	NodeStmtExpr:             "StmtExpr",
	NodeStmtUse:              "StmtUse",
	NodeUseAssignment:        "UseAssignment",
	NodeLiteral:              "Literal",
	NodeTuple:                "Tuple",
	NodeList:                 "List",
	NodeExprSpread:           "ExprSpread",
	NodeBitString:            "BitString",
	NodeBitStringSegment:     "BitStringSegment",
	NodeCase:                 "Case",
	NodeClause:               "Clause",
	NodeAlternativePattern:   "AlternativePattern",
	NodePatternGuard:         "PatternGuard",
	NodeAsPattern:            "AsPattern",
	NodePatternVariable:      "PatternVariable",
	NodePatternTuple:         "PatternTuple",
	NodePatternList:          "PatternList",
	NodePatternSpread:        "PatternSpread",
	NodePatternConcat:        "PatternConcat",
	NodeUnaryPattern:         "UnaryPattern",
	NodeVariantRef:           "VariantRef",
	NodeVariantRefFieldList:  "VariantRefFieldList",
	NodeVariantRefField:      "VariantRefField",
	NodeVariantConstructor:   "VariantConstructor",
	NodeVariable:             "Variable",
	NodeExprCall:             "ExprCall",
	NodeArgList:              "ArgList",
	NodeArg:                  "Arg",
	NodeFieldAccess:          "FieldAccess",
	NodeTupleIndex:           "TupleIndex",
	NodeBinaryOp:             "BinaryOp",
	NodeUnaryOp:              "UnaryOp",
	NodePipe:                 "Pipe",
	NodeHole:                 "Hole",
	NodeTodo:                 "Todo",
	NodePanic:                "Panic",
	NodeImport:               "Import",
	NodeModulePath:           "ModulePath",
	NodePath:                 "Path",
	NodeUnqualifiedImport:    "UnqualifiedImport",
	NodeModuleConstant:       "ModuleConstant",
	NodeConstantTuple:        "ConstantTuple",
	NodeConstantList:         "ConstantList",
	NodeAdt:                  "Adt",
	NodeCustomTypeAlias:      "CustomTypeAlias",
	NodeVariant:              "Variant",
	NodeConstructorFieldList: "ConstructorFieldList",
	NodeConstructorField:     "ConstructorField",
	NodeGenericParamList:     "GenericParamList",
	NodeFnType:               "FnType",
	NodeTupleType:            "TupleType",
	NodeTypeNameRef:          "TypeNameRef",
	NodeTypeApplication:      "TypeApplication",
	NodeTypeArgList:          "TypeArgList",
	NodeTypeArg:              "TypeArg",
	NodeParamTypeList:        "ParamTypeList",
}

func (k SyntaxKind) String() string {
	if name, ok := syntaxKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether the kind carries no grammatical meaning.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenComment, TokenDocComment, TokenModuleComment:
		return true
	}
	return false
}

func (k SyntaxKind) IsWhitespace() bool {
	return k == TokenWhitespace
}

// IsModuleDoc reports trivia that belongs above the first declaration of a
// file: plain whitespace and //// comments.
func (k SyntaxKind) IsModuleDoc() bool {
	return k == TokenWhitespace || k == TokenModuleComment
}

func (k SyntaxKind) IsComment() bool {
	switch k {
	case TokenComment, TokenDocComment, TokenModuleComment:
		return true
	}
	return false
}

// isDeclaration reports node kinds whose leading doc comments the tree
// builder attaches inside the node rather than to the enclosing file.
func (k SyntaxKind) isDeclaration() bool {
	switch k {
	case NodeFunction, NodeModuleConstant, NodeAdt, NodeCustomTypeAlias, NodeVariant:
		return true
	}
	return false
}

var keywords = map[string]SyntaxKind{
	"as":     TokenAs,
	"assert": TokenAssert,
	"case":   TokenCase,
	"const":  TokenConst,
	"fn":     TokenFn,
	"if":     TokenIf,
	"import": TokenImport,
	"let":    TokenLet,
	"opaque": TokenOpaque,
	"panic":  TokenPanic,
	"pub":    TokenPub,
	"todo":   TokenTodo,
	"type":   TokenType,
	"use":    TokenUse,
}

// LookupKeyword maps identifier text to its keyword kind, or TokenIdent.
func LookupKeyword(ident string) SyntaxKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

package compiler

// ---------------------------------------------------------------------------
// AST: Abstract syntax tree for Nemo source
// ---------------------------------------------------------------------------

// Span covers the source range of a node.
type Span struct {
	Start Position
	End   Position
}

// Node is implemented by every AST node.
type Node interface {
	Span() Span
	node()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Literal is a scalar or singleton literal: Integer, Float, String,
// Symbol, nil, true, false.
type Literal struct {
	SpanVal Span
	Kind    TokenKind // TokenInteger, TokenFloat, TokenString, TokenSymbol, or TokenIdentifier for nil/true/false
	Text    string    // raw text, or "nil"/"true"/"false"
}

func (n *Literal) Span() Span { return n.SpanVal }
func (n *Literal) node()      {}
func (n *Literal) expr()      {}

// Identifier is a variable reference; the naming rule decides at
// parse time whether it targets globals or activation-local scope.
type Identifier struct {
	SpanVal Span
	Name    string
}

func (n *Identifier) Span() Span { return n.SpanVal }
func (n *Identifier) node()      {}
func (n *Identifier) expr()      {}

// Assign is `name := value`.
type Assign struct {
	SpanVal Span
	Name    string
	Value   Expr
}

func (n *Assign) Span() Span { return n.SpanVal }
func (n *Assign) node()      {}
func (n *Assign) expr()      {}

// SuperKind distinguishes plain `super` from a scoped `super<Parent>`.
type SuperKind int

const (
	NotSuper SuperKind = iota
	PlainSuper
	ScopedSuper
)

// MessageSend is a unary, binary, or keyword message send.
type MessageSend struct {
	SpanVal    Span
	Receiver   Expr
	Selector   string
	Args       []Expr
	Super      SuperKind
	SuperClass string // parent class name, set when Super == ScopedSuper
}

func (n *MessageSend) Span() Span { return n.SpanVal }
func (n *MessageSend) node()      {}
func (n *MessageSend) expr()      {}

// CascadeMessage is one message in a cascade, sharing the cascade's receiver.
type CascadeMessage struct {
	Selector string
	Args     []Expr
}

// Cascade sends several messages to one receiver: `recv msg1; msg2; msg3`.
// The first message (against the real receiver expression) is Messages[0].
type Cascade struct {
	SpanVal  Span
	Receiver Expr
	Messages []CascadeMessage
}

func (n *Cascade) Span() Span { return n.SpanVal }
func (n *Cascade) node()      {}
func (n *Cascade) expr()      {}

// Block is a block literal: `[:a :b | | t1 t2 | stmt. stmt]`.
type Block struct {
	SpanVal    Span
	Params     []string
	Temps      []string
	Statements []Stmt
}

func (n *Block) Span() Span { return n.SpanVal }
func (n *Block) node()      {}
func (n *Block) expr()      {}

// ArrayLiteral is `#(1 2 3 #foo "bar")`.
type ArrayLiteral struct {
	SpanVal  Span
	Elements []Expr
}

func (n *ArrayLiteral) Span() Span { return n.SpanVal }
func (n *ArrayLiteral) node()      {}
func (n *ArrayLiteral) expr()      {}

// TablePair is one `key: value` entry of a TableLiteral.
type TablePair struct {
	Key   string
	Value Expr
}

// TableLiteral is `{key1: expr1. key2: expr2}`.
type TableLiteral struct {
	SpanVal Span
	Pairs   []TablePair
}

func (n *TableLiteral) Span() Span { return n.SpanVal }
func (n *TableLiteral) node()      {}
func (n *TableLiteral) expr()      {}

// ReturnStmt is `^ expr`.
type ReturnStmt struct {
	SpanVal Span
	Value   Expr
}

func (n *ReturnStmt) Span() Span { return n.SpanVal }
func (n *ReturnStmt) node()      {}
func (n *ReturnStmt) stmt()      {}

// ExprStmt is an expression evaluated for its value (and side effects) as a
// top-level statement in a method or block body.
type ExprStmt struct {
	SpanVal Span
	Value   Expr
}

func (n *ExprStmt) Span() Span { return n.SpanVal }
func (n *ExprStmt) node()      {}
func (n *ExprStmt) stmt()      {}

// MethodBody carries an already-parsed method's parameters, temporaries,
// and statements, shared by both instance- and class-side definitions.
type MethodBody struct {
	Params     []string
	Temps      []string
	Statements []Stmt
}

// MethodDefinition elaborates `ClassExpr>>selector params [body]`.
// IsClassMethod is true for `ClassExpr class>>selector`.
type MethodDefinition struct {
	SpanVal       Span
	TargetClass   Expr
	IsClassMethod bool
	Selector      string
	Body          MethodBody
}

func (n *MethodDefinition) Span() Span { return n.SpanVal }
func (n *MethodDefinition) node()      {}
func (n *MethodDefinition) expr()      {}

// ClassDerive is `SuperExpr derive: #(slot1 slot2)` recognized at parse
// time so a top-level assignment like `Point := Object derive: #(x y)`
// can be given a friendly AST shape; it also elaborates to an ordinary
// message send so nothing is lost if pattern-matched differently.
type ClassDerive struct {
	SpanVal    Span
	Superclass Expr
	SlotNames  []string
}

func (n *ClassDerive) Span() Span { return n.SpanVal }
func (n *ClassDerive) node()      {}
func (n *ClassDerive) expr()      {}

// TopLevelSequence is a whole parsed source file: a sequence of
// top-level statements evaluated in order.
type TopLevelSequence struct {
	SpanVal    Span
	Statements []Stmt
}

func (n *TopLevelSequence) Span() Span { return n.SpanVal }
func (n *TopLevelSequence) node()      {}

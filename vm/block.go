package vm

import "github.com/nemo-lang/nemo/compiler"

// Block is a closure: a parsed block body plus the lexical Frame it was
// created in. Evaluating a Block reuses that Frame chain, so it sees and
// can mutate the enclosing method's temps, and a `^` inside it performs a
// non-local return from Home.
type Block struct {
	Params []string
	Temps  []string
	Body   []compiler.Stmt
	Home   *Frame
}

// NewBlock captures ast at creation time, closing over enclosing.
func NewBlock(ast *compiler.Block, enclosing *Frame) *Block {
	return &Block{
		Params: append([]string{}, ast.Params...),
		Temps:  append([]string{}, ast.Temps...),
		Body:   ast.Statements,
		Home:   enclosing,
	}
}

// NumArgs reports how many arguments this block expects, used to raise
// WrongBlockArity when value/value:/value:value:... mismatches it.
func (b *Block) NumArgs() int { return len(b.Params) }

// NewTopLevelBlock wraps stmts as a zero-argument Block homed at frame,
// letting a script's top-level statements run as a forked Process the
// same way Processor fork: runs any other block.
func NewTopLevelBlock(stmts []compiler.Stmt, frame *Frame) *Block {
	return &Block{Body: stmts, Home: frame}
}

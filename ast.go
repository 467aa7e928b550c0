package taglog

// node is the interface implemented by all pattern AST nodes.
// Nodes are immutable after construction and owned exclusively by the
// Pattern that produced them.
type node interface {
	node() // marker method
}

type binaryOp uint8

const (
	opAnd binaryOp = iota + 1
	opOr
	opAndNot // left AND NOT right; not commutative
)

// tagExpr is a leaf matching exactly one tag name.
type tagExpr struct {
	name string
}

func (tagExpr) node() {}

// notExpr negates its operand.
type notExpr struct {
	expr node
}

func (notExpr) node() {}

// binaryExpr is an AND, OR, or AND-NOT over two subexpressions.
type binaryExpr struct {
	op    binaryOp
	left  node
	right node
}

func (binaryExpr) node() {}

// Package ir implements the basic-block value graph that a (separately
// specified, not implemented here) translator would consume to emit
// native code for a block of RV32I instructions. A Block is an
// append-only arena of Nodes; operand references are arena indices, not
// pointers, so the whole graph can be copied, hashed or persisted as a
// flat slice.
package ir

import "errors"

// ErrOutOfCapacity is returned by any constructor once a Block has
// reached its configured maximum instruction count.
var ErrOutOfCapacity = errors.New("ir: block is at capacity")

// ErrBlockSealed is returned by any constructor called after Seal.
var ErrBlockSealed = errors.New("ir: block is sealed")

// NoParent marks a Node with no recorded consumer yet.
const NoParent = -1

// Op identifies a Node's operation. The set is fixed: this is a
// skeleton for a single future translator, not an extensible IR.
type Op int

const (
	OpImm Op = iota
	OpLdReg
	OpStReg
	OpStPC
	OpAdd
	OpSub
	OpAnd
	OpOr
	OpXor
	OpSltu
	OpSlt
	OpShl
	OpSal
	OpSll
	OpMul
	OpImul
)

func (op Op) String() string {
	switch op {
	case OpImm:
		return "imm"
	case OpLdReg:
		return "ld_reg"
	case OpStReg:
		return "st_reg"
	case OpStPC:
		return "st_pc"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpSltu:
		return "sltu"
	case OpSlt:
		return "slt"
	case OpShl:
		return "shl"
	case OpSal:
		return "sal"
	case OpSll:
		return "sll"
	case OpMul:
		return "mul"
	case OpImul:
		return "imul"
	default:
		return "unknown"
	}
}

// Node is one value in the graph. Which fields are meaningful depends on
// Op: Imm/Offset hold constructor-time constants, LHS/RHS/Value hold
// arena indices of operand nodes (-1 when unused), and Parent holds the
// index of the most recent node that consumed this one as an operand —
// a hint for the translator's linearization pass, not a full use-def
// edge set, and it is overwritten (not appended to) every time this node
// is consumed again.
type Node struct {
	Op     Op
	Imm    int32
	Offset int32
	LHS    int
	RHS    int
	Value  int
	Parent int
}

// Block is a single basic block's worth of IR: instructions accumulate
// in index order until Seal is called, after which the Block is
// immutable.
type Block struct {
	nodes   []Node
	maxInst int
	sealed  bool

	PCStart uint32
	PCEnd   uint32
	Predict *Block
}

// NewBlock allocates a Block able to hold up to maxInst nodes.
func NewBlock(maxInst int) *Block {
	return &Block{
		nodes:   make([]Node, 0, maxInst),
		maxInst: maxInst,
	}
}

// Len returns the number of nodes appended so far.
func (b *Block) Len() int { return len(b.nodes) }

// Sealed reports whether Seal has been called.
func (b *Block) Sealed() bool { return b.sealed }

// Seal marks the block as complete; no further nodes may be appended.
func (b *Block) Seal() { b.sealed = true }

// Node returns a copy of the node at index i.
func (b *Block) Node(i int) Node { return b.nodes[i] }

// alloc appends a zeroed node and returns its index. Every constructor
// in this file goes through alloc, including LdReg, so a reused arena
// slot never carries stale Parent/LHS/RHS values from whatever used to
// occupy it.
func (b *Block) alloc() (int, error) {
	if b.sealed {
		return 0, ErrBlockSealed
	}
	if len(b.nodes) >= b.maxInst {
		return 0, ErrOutOfCapacity
	}
	b.nodes = append(b.nodes, Node{LHS: NoParent, RHS: NoParent, Value: NoParent, Parent: NoParent})
	return len(b.nodes) - 1, nil
}

func (b *Block) markParent(operand, consumer int) {
	if operand == NoParent {
		return
	}
	b.nodes[operand].Parent = consumer
}

// Imm appends a 0-ary constant node.
func (b *Block) Imm(v int32) (int, error) {
	i, err := b.alloc()
	if err != nil {
		return 0, err
	}
	b.nodes[i].Op = OpImm
	b.nodes[i].Imm = v
	return i, nil
}

// LdReg appends a 0-ary node reading architectural register `offset`.
func (b *Block) LdReg(offset int32) (int, error) {
	i, err := b.alloc()
	if err != nil {
		return 0, err
	}
	b.nodes[i].Op = OpLdReg
	b.nodes[i].Offset = offset
	return i, nil
}

// StReg appends a 1-ary node storing val's result into architectural
// register `offset`.
func (b *Block) StReg(offset int32, val int) (int, error) {
	i, err := b.alloc()
	if err != nil {
		return 0, err
	}
	b.nodes[i].Op = OpStReg
	b.nodes[i].Offset = offset
	b.nodes[i].Value = val
	b.markParent(val, i)
	return i, nil
}

// StPC appends a 1-ary node storing val's result into the program
// counter.
func (b *Block) StPC(val int) (int, error) {
	i, err := b.alloc()
	if err != nil {
		return 0, err
	}
	b.nodes[i].Op = OpStPC
	b.nodes[i].Value = val
	b.markParent(val, i)
	return i, nil
}

func (b *Block) binary(op Op, lhs, rhs int) (int, error) {
	i, err := b.alloc()
	if err != nil {
		return 0, err
	}
	b.nodes[i].Op = op
	b.nodes[i].LHS = lhs
	b.nodes[i].RHS = rhs
	b.markParent(lhs, i)
	b.markParent(rhs, i)
	return i, nil
}

func (b *Block) Add(lhs, rhs int) (int, error)  { return b.binary(OpAdd, lhs, rhs) }
func (b *Block) Sub(lhs, rhs int) (int, error)  { return b.binary(OpSub, lhs, rhs) }
func (b *Block) And(lhs, rhs int) (int, error)  { return b.binary(OpAnd, lhs, rhs) }
func (b *Block) Or(lhs, rhs int) (int, error)   { return b.binary(OpOr, lhs, rhs) }
func (b *Block) Xor(lhs, rhs int) (int, error)  { return b.binary(OpXor, lhs, rhs) }
func (b *Block) Sltu(lhs, rhs int) (int, error) { return b.binary(OpSltu, lhs, rhs) }
func (b *Block) Slt(lhs, rhs int) (int, error)  { return b.binary(OpSlt, lhs, rhs) }
func (b *Block) Shl(lhs, rhs int) (int, error)  { return b.binary(OpShl, lhs, rhs) }
func (b *Block) Sal(lhs, rhs int) (int, error)  { return b.binary(OpSal, lhs, rhs) }
func (b *Block) Sll(lhs, rhs int) (int, error)  { return b.binary(OpSll, lhs, rhs) }
func (b *Block) Mul(lhs, rhs int) (int, error)  { return b.binary(OpMul, lhs, rhs) }
func (b *Block) Imul(lhs, rhs int) (int, error) { return b.binary(OpImul, lhs, rhs) }

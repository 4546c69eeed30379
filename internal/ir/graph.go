package ir

import (
	"fmt"
	"strings"
)

// NumValues returns the number of values in the arena.
func (a *Arena) NumValues() int {
	return len(a.values) - 1
}

// NumStatements returns the number of recorded statements.
func (a *Arena) NumStatements() int {
	return len(a.statements) - 1
}

// Statements returns all statements in recording order. Operands of a
// statement are always recorded before it, so this order is topological.
func (a *Arena) Statements() []Statement {
	out := make([]Statement, len(a.statements)-1)
	copy(out, a.statements[1:])
	return out
}

// Statement returns the statement with the given id.
func (a *Arena) Statement(id StmtID) (Statement, bool) {
	if id <= 0 || int(id) >= len(a.statements) {
		return nil, false
	}
	return a.statements[id], true
}

// Producer returns the statement that produced v. Graph inputs and values
// created directly through NewValueLike have no producer.
func (a *Arena) Producer(v Value) (Statement, bool) {
	n := a.node(v)
	if n == nil || n.producer == 0 {
		return nil, false
	}
	return a.statements[n.producer], true
}

// Uses returns the statements that read v, one entry per operand slot.
func (a *Arena) Uses(v Value) []Statement {
	n := a.node(v)
	if n == nil {
		return nil
	}
	uses := make([]Statement, len(n.uses))
	for i, id := range n.uses {
		uses[i] = a.statements[id]
	}
	return uses
}

// Inputs returns the values that have no producer, in allocation order.
func (a *Arena) Inputs() []Value {
	var inputs []Value
	for i := 1; i < len(a.values); i++ {
		if a.values[i].producer == 0 {
			inputs = append(inputs, Value(i))
		}
	}
	return inputs
}

// Format renders one statement, e.g. "f3 = add(f1, f2)".
func (a *Arena) Format(stmt Statement) string {
	ins := stmt.Inputs()
	names := make([]string, len(ins))
	for i, v := range ins {
		names[i] = a.Describe(v)
	}

	op := stmt.OpName()
	if u, ok := stmt.(*UnaryOp); ok && u.Op() == UnaryCast {
		op = fmt.Sprintf("cast<%s>", a.DataType(u.Output()))
	}
	return fmt.Sprintf("%s = %s(%s)", a.Describe(stmt.Output()), op, strings.Join(names, ", "))
}

// String renders every statement on its own line.
func (a *Arena) String() string {
	var b strings.Builder
	for _, stmt := range a.statements[1:] {
		b.WriteString(a.Format(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

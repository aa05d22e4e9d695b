package regex

import "fmt"

// BuildNFA compiles a regex into a Thompson-constructed NFA: it first runs
// ToPostfix, then walks the postfix string with a stack of fragment entry
// points, exactly mirroring original_source/src/regex_nfa.cpp's
// regex_to_nfa (ported here to an arena of indices instead of owned
// pointers, per spec.md §9's "Variant nodes" note).
func BuildNFA(re string) (*NFA, error) {
	postfix, err := ToPostfix(re)
	if err != nil {
		return nil, err
	}

	a := &NFA{}
	var stack []int // fragment entry indices

	push := func(idx int) { stack = append(stack, idx) }
	pop := func() (int, error) {
		if len(stack) == 0 {
			return 0, fmt.Errorf("%w: operator has no operand while building %q", ErrDanglingOperator, re)
		}
		n := len(stack) - 1
		idx := stack[n]
		stack = stack[:n]
		return idx, nil
	}
	alloc := func(n node) int {
		a.nodes = append(a.nodes, n)
		return len(a.nodes) - 1
	}

	for i := 0; i < len(postfix); i++ {
		ch := postfix[i]
		switch ch {
		case concatOp:
			e2, err := pop()
			if err != nil {
				return nil, err
			}
			e1, err := pop()
			if err != nil {
				return nil, err
			}
			a.patch(e1, e2)
			push(e1)

		case unionOp:
			// right-then-left: this ordering is observable in which
			// sub-alternative the simulator explores first (spec.md §4.E).
			split := alloc(splitNode())
			e2, err := pop()
			if err != nil {
				return nil, err
			}
			e1, err := pop()
			if err != nil {
				return nil, err
			}
			a.nodes[split].out2 = e2
			a.nodes[split].out1 = e1
			push(split)

		case optionalOp:
			split := alloc(splitNode())
			e, err := pop()
			if err != nil {
				return nil, err
			}
			a.nodes[split].out1 = e
			// out2 stays unset; the next patch() attaches it to whatever follows.
			push(split)

		case kleeneOp:
			split := alloc(splitNode())
			e, err := pop()
			if err != nil {
				return nil, err
			}
			a.nodes[split].out1 = e
			a.patch(e, split) // back-edge
			push(split)

		case repeatOp:
			split := alloc(splitNode())
			e, err := pop()
			if err != nil {
				return nil, err
			}
			a.patch(e, split)
			a.nodes[split].out1 = e
			push(e) // entry must run the expression at least once

		default:
			push(alloc(literalNode(ch)))
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %q leaves %d fragment(s) on the stack", ErrMalformedPostfix, re, len(stack))
	}

	head := stack[0]
	terminal := alloc(terminalNode())
	a.patch(head, terminal)
	a.head = head

	return a, nil
}

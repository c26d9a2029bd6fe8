package dice

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Expr is a parsed dice formula
type Expr struct {
	formula string
	root    node
}

// String returns the formula the expression was parsed from
func (e *Expr) String() string {
	return e.formula
}

func (e *Expr) eval(roller dice.Roller) (int, error) {
	return e.root.eval(e.formula, roller)
}

type node interface {
	eval(formula string, roller dice.Roller) (int, error)
}

type literal int

func (n literal) eval(string, dice.Roller) (int, error) {
	return int(n), nil
}

type roll struct {
	count int
	size  int
}

func (n roll) eval(formula string, roller dice.Roller) (int, error) {
	values, err := roller.RollN(n.count, n.size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %dd%d for %q", n.count, n.size, formula)
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return total, nil
}

type negate struct {
	operand node
}

func (n negate) eval(formula string, roller dice.Roller) (int, error) {
	v, err := n.operand.eval(formula, roller)
	return -v, err
}

type binary struct {
	op          byte
	left, right node
}

func (n binary) eval(formula string, roller dice.Roller) (int, error) {
	l, err := n.left.eval(formula, roller)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(formula, roller)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, errors.InvalidFormula(formula, "division by zero")
		}
		// floor division
		q := l / r
		if (l%r != 0) && ((l < 0) != (r < 0)) {
			q--
		}
		return q, nil
	default:
		return 0, errors.InvalidFormula(formula, fmt.Sprintf("unknown operator %q", n.op))
	}
}

// Parse compiles formula. The grammar is integers, NdM and dM terms,
// + - * / (x is accepted for *), unary minus and parentheses. Whitespace is
// ignored.
func Parse(formula string) (*Expr, error) {
	src := strings.ToLower(strings.Join(strings.Fields(formula), ""))
	if src == "" {
		return nil, errors.InvalidFormula(formula, "formula is empty")
	}

	p := &parser{formula: formula, src: src}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.fail("unexpected %q", p.src[p.pos])
	}

	return &Expr{formula: formula, root: root}, nil
}

type parser struct {
	formula string
	src     string
	pos     int
	depth   int
}

func (p *parser) fail(format string, args ...any) error {
	return errors.InvalidFormula(p.formula, fmt.Sprintf(format, args...)).
		WithMeta("position", p.pos)
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op == 'x' {
			op = '*'
		}
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (node, error) {
	switch p.peek() {
	case '-':
		p.pos++
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negate{operand: operand}, nil
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	c := p.peek()
	switch {
	case c == 0:
		return nil, p.fail("unexpected end of formula")
	case c == '(':
		p.depth++
		if p.depth > 32 {
			return nil, p.fail("too deeply nested")
		}
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.fail("missing closing parenthesis")
		}
		p.pos++
		p.depth--
		return inner, nil
	case c == 'd':
		return p.dice(1)
	case isDigit(c):
		n, err := p.number()
		if err != nil {
			return nil, err
		}
		if p.peek() == 'd' {
			return p.dice(n)
		}
		return literal(n), nil
	default:
		return nil, p.fail("unexpected %q", c)
	}
}

func (p *parser) dice(count int) (node, error) {
	p.pos++ // 'd'
	if !isDigit(p.peek()) {
		return nil, p.fail("missing die size")
	}
	size, err := p.number()
	if err != nil {
		return nil, err
	}

	if count < 0 || count > MaxDiceCount {
		return nil, p.fail("dice count must be between 0 and %d", MaxDiceCount)
	}
	if size < 1 || size > MaxDieSize {
		return nil, p.fail("die size must be between 1 and %d", MaxDieSize)
	}
	if count == 0 {
		return literal(0), nil
	}

	return roll{count: count, size: size}, nil
}

func (p *parser) number() (int, error) {
	start := p.pos
	n := 0
	for isDigit(p.peek()) {
		n = n*10 + int(p.peek()-'0')
		p.pos++
		if p.pos-start > 9 {
			return 0, p.fail("number too large")
		}
	}
	return n, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

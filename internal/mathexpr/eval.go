package mathexpr

import (
	"math"
	"sort"
)

// Func is a named function callable from an expression.
// Arity < 0 means any number of arguments.
type Func struct {
	Arity int
	Fn    func(args ...float64) (float64, error)
}

// Unary wraps a plain one-argument math function.
func Unary(fn func(float64) float64) Func {
	return Func{Arity: 1, Fn: func(args ...float64) (float64, error) {
		return fn(args[0]), nil
	}}
}

// Scope maps identifiers to constants and functions.
type Scope struct {
	Vars  map[string]float64
	Funcs map[string]Func
}

// Names returns every identifier defined in the scope, sorted.
func (s Scope) Names() []string {
	names := make([]string, 0, len(s.Vars)+len(s.Funcs))
	for n := range s.Vars {
		names = append(names, n)
	}
	for n := range s.Funcs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Engine evaluates expression text. The zero value is ready to use.
type Engine struct{}

// Evaluate parses src and evaluates it against scope.
func (Engine) Evaluate(src string, scope Scope) (float64, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return n.Eval(scope)
}

type numberNode float64

func (n numberNode) Eval(Scope) (float64, error) {
	return float64(n), nil
}

type identNode string

func (n identNode) Eval(scope Scope) (float64, error) {
	v, ok := scope.Vars[string(n)]
	if !ok {
		return 0, &UndefinedError{Name: string(n)}
	}
	return v, nil
}

type unaryNode struct {
	op string
	x  Node
}

func (n *unaryNode) Eval(scope Scope) (float64, error) {
	v, err := n.x.Eval(scope)
	if err != nil {
		return 0, err
	}
	if n.op == "-" {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op          string
	left, right Node
}

func (n *binaryNode) Eval(scope Scope) (float64, error) {
	l, err := n.left.Eval(scope)
	if err != nil {
		return 0, err
	}
	r, err := n.right.Eval(scope)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil
	case "^":
		return math.Pow(l, r), nil
	}
	return 0, &SyntaxError{Msg: "unknown operator " + n.op}
}

type callNode struct {
	name string
	args []Node
}

func (n *callNode) Eval(scope Scope) (float64, error) {
	f, ok := scope.Funcs[n.name]
	if !ok {
		return 0, &UndefinedError{Name: n.name, Call: true}
	}
	if f.Arity >= 0 && f.Arity != len(n.args) {
		return 0, &ArityError{Name: n.name, Want: f.Arity, Got: len(n.args)}
	}
	vals := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.Eval(scope)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	return f.Fn(vals...)
}

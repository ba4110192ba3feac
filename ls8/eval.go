package ls8

import (
	"errors"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// valueOf returns the integer value of a numeric literal or a $(...)
// compile-time expression.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return asm.parenEval(word[2 : len(word)-1])
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = ErrNumberRange(word)
		return
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations. Labels defined so far
// are visible as integer variables, in any case.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "ls8asm"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"

	file, err := opts.Parse("expr", prog, 0)
	if err != nil || len(file.Stmts) != 1 {
		err = ErrParseExpression(expr)
		return
	}
	assign, ok := file.Stmts[0].(*syntax.AssignStmt)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	pred := starlark.StringDict{}
	syntax.Walk(assign.RHS, func(node syntax.Node) bool {
		ident, ok := node.(*syntax.Ident)
		if ok {
			addr, known := asm.Symbols.Resolve(ident.Name)
			if known {
				pred[ident.Name] = starlark.MakeInt(addr)
			}
		}
		return true
	})

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

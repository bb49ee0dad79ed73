package vm

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/josharian/intern"
	"github.com/rami3l/govox/debug"
	e "github.com/rami3l/govox/errors"
	"github.com/sirupsen/logrus"
)

type Parser struct {
	*Scanner
	prev, curr     Token
	compilingChunk *Chunk

	errors *multierror.Error
	// Whether the parser is trying to sync, i.e. in the error recovery process.
	panicMode bool
}

func NewParser() *Parser { return &Parser{} }

/* Single-pass compilation */

func (p *Parser) emitConst(val Value) { p.emitBytes(byte(OpConst), p.makeConst(val)) }

func (p *Parser) makeConst(val Value) byte {
	const_ := p.currentChunk().AddConst(val)
	if const_ > math.MaxUint8 {
		p.Error("too many constants in one chunk")
		return 0
	}
	return byte(const_)
}

func (p *Parser) num(_canAssign bool) {
	val, err := strconv.ParseFloat(p.prev.String(), 64)
	if err != nil {
		p.Error(err.Error())
	}
	p.emitConst(VNum(val))
}

func (p *Parser) grouping(_canAssign bool) {
	p.expr()
	p.consume(TRParen, "expect ')' after expression")
}

func (p *Parser) ident(canAssign bool) {
	name := p.prev
	if p.match(TLParen) {
		p.call(name)
		return
	}

	arg := p.identConst(name)
	switch {
	case canAssign && p.match(TEqual):
		p.expr()
		p.emitBytes(byte(OpSetGlobal), arg)
	default:
		p.emitBytes(byte(OpGetGlobal), arg)
	}
}

func (p *Parser) call(name Token) {
	idx, ok := builtinIndex[name.String()]
	if !ok {
		p.ErrorAt(name, "unknown function")
	}
	argc := p.args()
	if ok && !builtins[idx].accepts(argc) {
		p.ErrorAt(name, builtins[idx].signature())
	}
	p.emitBytes(byte(OpCall), byte(idx), byte(argc))
}

func (p *Parser) args() (argc int) {
	if !p.check(TRParen) {
		for {
			p.expr()
			if argc == math.MaxUint8 {
				p.Error("can't have more than 255 arguments")
			}
			argc++
			if !p.match(TComma) {
				break
			}
		}
	}
	p.consume(TRParen, "expect ')' after arguments")
	return
}

var fieldIndex = map[string]byte{"x": 0, "y": 1, "z": 2, "w": 3}

func (p *Parser) field(_canAssign bool) {
	name := p.consume(TIdent, "expect component name after '.'")
	if name == nil {
		return
	}
	idx, ok := fieldIndex[name.String()]
	if !ok {
		p.Error("unknown vector component")
	}
	p.emitBytes(byte(OpGetField), idx)
}

func (p *Parser) unary(_canAssign bool) {
	op := p.prev.Type

	// Compile the RHS.
	p.parsePrec(PrecUnary)

	// Emit the operator instruction.
	switch op {
	case TMinus:
		p.emitBytes(byte(OpNeg))
	default:
		panic(e.Unreachable)
	}
}

func (p *Parser) binary(_canAssign bool) {
	op := p.prev.Type
	rule := parseRules[op]

	// Compile the RHS.
	p.parsePrec(rule.Prec + 1)

	// Emit the operator instruction.
	switch op {
	case TPlus:
		p.emitBytes(byte(OpAdd))
	case TMinus:
		p.emitBytes(byte(OpSub))
	case TStar:
		p.emitBytes(byte(OpMul))
	case TSlash:
		p.emitBytes(byte(OpDiv))
	default:
		panic(e.Unreachable)
	}
}

func (p *Parser) expr() { p.parsePrec(PrecAssign) }

func (p *Parser) letDecl() {
	name := p.consume(TIdent, "expect variable name after 'let'")
	if name == nil {
		return
	}
	global := p.identConst(*name)
	p.consume(TEqual, "expect '=' after variable name")
	p.expr()
	p.emitBytes(byte(OpDefGlobal), global)
}

// stmt compiles one statement, leaving its value on the stack.
func (p *Parser) stmt() {
	switch {
	case p.match(TLet):
		p.letDecl()
	default:
		p.expr()
	}
	if !p.check(TEOF) {
		p.consume(TSemi, "expect ';' after statement")
	}
}

type ParseFn = func(p *Parser, canAssign bool)

type ParseRule struct {
	Prefix, Infix ParseFn
	Prec
}

var parseRules []ParseRule

func init() {
	parseRules = []ParseRule{
		TLParen: {(*Parser).grouping, nil, PrecNone},
		TDot:    {nil, (*Parser).field, PrecCall},
		TMinus:  {(*Parser).unary, (*Parser).binary, PrecTerm},
		TPlus:   {nil, (*Parser).binary, PrecTerm},
		TSlash:  {nil, (*Parser).binary, PrecFactor},
		TStar:   {nil, (*Parser).binary, PrecFactor},
		TIdent:  {(*Parser).ident, nil, PrecNone},
		TNum:    {(*Parser).num, nil, PrecNone},
		TEOF:    {},
	}
}

func (p *Parser) parsePrec(prec Prec) {
	p.advance()

	// Parse LHS.
	prefix := parseRules[p.prev.Type].Prefix
	if prefix == nil {
		p.Error("expect expression")
		return
	}
	canAssign := prec <= PrecAssign
	prefix(p, canAssign)

	// Parse RHS if there's one maintaining rule.Prec >= prec.
	for {
		rule := parseRules[p.curr.Type]
		if rule.Prec < prec {
			break
		}
		p.advance()
		if rule.Infix == nil {
			panic(e.Unreachable)
		}
		rule.Infix(p, canAssign)
	}

	if canAssign && p.match(TEqual) {
		p.Error("invalid assignment target")
	}
}

/* Parsing helpers */

func (p *Parser) check(ty TokenType) bool     { return p.curr.Type == ty }
func (p *Parser) checkPrev(ty TokenType) bool { return p.prev.Type == ty }

func (p *Parser) advance() {
	p.prev = p.curr
	for {
		// Skip until the first non-TErr token.
		if p.curr = p.ScanToken(); !p.check(TErr) {
			break
		}
		p.ErrorAtCurr(p.curr.String())
	}
}

func (p *Parser) match(ty TokenType) (matched bool) {
	if !p.check(ty) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(ty TokenType, errorMsg string) *Token {
	if !p.check(ty) {
		p.ErrorAtCurr(errorMsg)
		return nil
	}
	p.advance()
	return &p.prev
}

/* Compiling helpers */

// Compile compiles a sequence of statements. Running the resulting chunk
// yields the value of the last statement.
func (p *Parser) Compile(src string) (res *Chunk, err error) {
	res = NewChunk()
	p.compilingChunk = res
	defer func() { p.compilingChunk = nil }()
	p.Scanner = NewScanner(src)

	p.advance()
	for first := true; !p.check(TEOF); first = false {
		if !first {
			p.emitBytes(byte(OpPop))
		}
		p.stmt()
		if p.panicMode {
			p.sync()
		}
	}
	p.endCompiler()
	err = p.errors.ErrorOrNil()
	return
}

func (p *Parser) currentChunk() *Chunk { return p.compilingChunk }

func (p *Parser) emitBytes(bs ...byte) {
	for _, b := range bs {
		p.currentChunk().Write(b, p.prev.Line)
	}
}

func (p *Parser) endCompiler() {
	p.emitBytes(byte(OpReturn))
	if debug.DEBUG {
		logrus.Debugln(p.currentChunk().Disassemble("endCompiler"))
	}
}

// identConst stores the interned name as a constant, so that a long REPL
// session shares one copy of each global's name. A name already in the chunk
// reuses its slot.
func (p *Parser) identConst(name Token) byte {
	ident := VIdent(intern.String(name.String()))
	for i, c := range p.currentChunk().consts {
		if i > math.MaxUint8 {
			break
		}
		if c == Value(ident) {
			return byte(i)
		}
	}
	return p.makeConst(ident)
}

/* Precedence */

type Prec int

const (
	PrecNone   Prec = iota
	PrecAssign      // =
	PrecTerm        // + -
	PrecFactor      // * /
	PrecUnary       // -
	PrecCall        // . ()
	PrecPrimary
)

/* Error handling */

// sync skips tokens until the start of the next statement.
func (p *Parser) sync() {
	p.panicMode = false
	for !p.check(TEOF) {
		if p.checkPrev(TSemi) || p.check(TLet) {
			return
		}
		p.advance()
	}
}

func (p *Parser) ErrorAt(tk Token, reason string) {
	// Don't collect error when we're syncing.
	if p.panicMode {
		return
	}
	p.panicMode = true

	var tkStr string
	switch tk.Type {
	case TEOF:
		tkStr = "EOF"
	case TIdent:
		tkStr = fmt.Sprintf("identifier `%v`", tk)
	case TErr:
		tkStr = fmt.Sprintf("line %d", tk.Line)
	default:
		tkStr = fmt.Sprintf("`%v`", tk)
	}
	reason1 := fmt.Sprintf("at %s, %s", tkStr, reason)
	err := &e.CompilationError{Line: tk.Line, Reason: reason1}

	if debug.DEBUG {
		logrus.Debugln(err)
	}

	p.errors = multierror.Append(p.errors, err)
}

func (p *Parser) Error(reason string)       { p.ErrorAt(p.prev, reason) }
func (p *Parser) ErrorAtCurr(reason string) { p.ErrorAt(p.curr, reason) }

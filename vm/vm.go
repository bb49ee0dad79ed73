package vm

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/rami3l/govox/debug"
	e "github.com/rami3l/govox/errors"
	"github.com/rami3l/govox/vmath"
	"github.com/sirupsen/logrus"
)

// VM evaluates vector expressions. Globals persist between calls to
// Interpret. A VM must not be used from several goroutines at once.
type VM struct {
	chunk *Chunk
	ip    int
	// Offset of the instruction being executed.
	instStart int
	stack     []Value
	globals   map[string]Value
	policy    vmath.NormalizePolicy
}

func NewVM() *VM { return &VM{globals: make(map[string]Value)} }

// WithPolicy sets the policy used by the `normalize` builtin.
func (vm *VM) WithPolicy(policy vmath.NormalizePolicy) *VM {
	vm.policy = policy
	return vm
}

func (vm *VM) push(val Value) {
	vm.stack = append(vm.stack, val)
}

func (vm *VM) pop() (last Value) {
	len_ := len(vm.stack)
	debug.Assertf(len_ > 0, "len(vm.stack) > 0", "pop from an empty stack")
	vm.stack, last = vm.stack[:len_-1], vm.stack[len_-1]
	return
}

func (vm *VM) peek(distance int) Value {
	return vm.stack[len(vm.stack)-1-distance]
}

func (vm *VM) REPL() error {
	reader, err := readline.New(">> ")
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		line, err := reader.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt: // ^C
			continue
		case io.EOF: // ^D
			return nil
		default:
			return err
		}

		val, err := vm.Interpret(line)
		switch {
		case err != nil:
			logrus.Error(err)
		case val != nil:
			fmt.Println(val)
		}
	}
}

// Interpret compiles and runs src, returning the value of its last
// statement, or nil if src has none.
func (vm *VM) Interpret(src string) (Value, error) {
	parser := NewParser()
	chunk, err := parser.Compile(src)
	if err != nil {
		return nil, err
	}
	vm.chunk = chunk
	vm.ip = 0
	vm.stack = vm.stack[:0]
	return vm.run()
}

func (vm *VM) run() (Value, error) {
	if vm.chunk == nil {
		return nil, vm.Error("chunk uninitialized")
	}

	readByte := func() (res byte) {
		res = vm.chunk.code[vm.ip]
		vm.ip++
		return
	}
	readConst := func() Value { return vm.chunk.consts[readByte()] }
	readIdent := func() string { return string(readConst().(VIdent)) }

	for {
		if debug.DEBUG {
			logrus.Debugln(vm.stackTrace())
			instDump, _ := vm.chunk.DisassembleInst(vm.ip)
			logrus.Debugln(instDump)
		}
		vm.instStart = vm.ip
		switch inst := OpCode(readByte()); inst {
		case OpReturn:
			if len(vm.stack) == 0 {
				return nil, nil
			}
			res := vm.pop()
			debug.AssertEq(0, len(vm.stack))
			return res, nil
		case OpConst:
			vm.push(readConst())
		case OpPop:
			vm.pop()
		case OpGetGlobal:
			name := readIdent()
			val, ok := vm.globals[name]
			if !ok {
				return nil, vm.Error(fmt.Sprintf("undefined variable `%s`", name))
			}
			vm.push(val)
		case OpDefGlobal:
			vm.globals[readIdent()] = vm.peek(0)
		case OpSetGlobal:
			name := readIdent()
			if _, ok := vm.globals[name]; !ok {
				return nil, vm.Error(fmt.Sprintf("undefined variable `%s`", name))
			}
			vm.globals[name] = vm.peek(0)
		case OpGetField:
			idx := int(readByte())
			v := vm.pop()
			res, ok := VField(v, idx)
			if !ok {
				return nil, vm.Error(fmt.Sprintf("%s has no component `%c`", typeName(v), "xyzw"[idx]))
			}
			vm.push(res)
		case OpNeg:
			res, ok := VNeg(vm.pop())
			if !ok {
				return nil, vm.Error("operand must be a number or a vector")
			}
			vm.push(res)
		case OpAdd, OpSub, OpMul, OpDiv:
			rhs := vm.pop()
			lhs := vm.pop()
			var res Value
			var ok bool
			switch inst {
			case OpAdd:
				res, ok = VAdd(lhs, rhs)
			case OpSub:
				res, ok = VSub(lhs, rhs)
			case OpMul:
				res, ok = VMul(lhs, rhs)
			case OpDiv:
				res, ok = VDiv(lhs, rhs)
			}
			if !ok {
				return nil, vm.Error(fmt.Sprintf(
					"operands must be numbers or vectors of the same size, got %s and %s",
					typeName(lhs), typeName(rhs),
				))
			}
			vm.push(res)
		case OpCall:
			fn := &builtins[readByte()]
			argc := int(readByte())
			debug.Assertf(fn.accepts(argc), "fn.accepts(argc)", "%s called with %d args", fn.name, argc)
			args := make([]Value, argc)
			copy(args, vm.stack[len(vm.stack)-argc:])
			vm.stack = vm.stack[:len(vm.stack)-argc]
			res, err := fn.fn(vm, args)
			if err != nil {
				return nil, vm.Error(err.Error())
			}
			vm.push(res)
		default:
			return nil, &e.RuntimeError{
				Line:   vm.chunk.lines[vm.instStart],
				Reason: fmt.Sprintf("unknown instruction '%d'", inst),
			}
		}
	}
}

func (vm *VM) Error(reason string) *e.RuntimeError {
	err := &e.RuntimeError{Reason: reason}
	if vm.chunk != nil && vm.instStart < len(vm.chunk.lines) {
		err.Line = vm.chunk.lines[vm.instStart]
	}
	return err
}

func (vm *VM) stackTrace() string {
	res := "          "
	for _, slot := range vm.stack {
		res += fmt.Sprintf("[ %s ]", slot)
	}
	return res
}

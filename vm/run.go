// This file is part of drw - https://github.com/cqn-brwpna9/drw
//
// Copyright 2024 The drw Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"fmt"
	"math"

	"github.com/cqn-brwpna9/drw/turtle"
	"github.com/pkg/errors"
)

var binary = map[Opcode]func(a, b float64) float64{
	OpAdd: func(a, b float64) float64 { return a + b },
	OpSub: func(a, b float64) float64 { return a - b },
	OpMul: func(a, b float64) float64 { return a * b },
	OpDiv: func(a, b float64) float64 { return a / b },
	OpMod: math.Mod,
	OpPow: math.Pow,
	OpLog: func(a, b float64) float64 { return math.Log(a) / math.Log(b) },
	OpLt:  func(a, b float64) float64 { return truth(a < b) },
	OpGt:  func(a, b float64) float64 { return truth(a > b) },
	OpEq:  func(a, b float64) float64 { return truth(a == b) },
}

var unary = map[Opcode]func(a float64) float64{
	OpSqrt:  math.Sqrt,
	OpSin:   math.Sin,
	OpCeil:  math.Ceil,
	OpFloor: math.Floor,
	OpRound: math.Round,
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Run executes the program p.
//
// Execution stops at the first error, which is returned as an *OpError
// pointing at the faulting node. The stacks and the turtle are left as they
// were at that point; segments committed before the fault remain in the
// turtle's history.
//
// Run does not return until p completes: a while loop whose condition never
// reaches 0 runs forever.
func (i *Instance) Run(p *Program) error {
	i.insCount = 0
	i.name = p.Name
	err := i.exec(p.Root.Body)
	if err != nil {
		i.log.Debug().Err(err).Int64("instructions", i.insCount).Msg("run failed")
		return err
	}
	i.log.Debug().Int64("instructions", i.insCount).Int("depth", i.data.Len()).Msg("run complete")
	return nil
}

func (i *Instance) fail(op fmt.Stringer, pos int, err error) error {
	return errors.WithStack(&OpError{Name: i.name, Op: op.String(), Pos: pos, Err: err})
}

func (i *Instance) exec(body []Node) (err error) {
	for _, n := range body {
		switch n := n.(type) {
		case Number:
			i.log.Trace().Float64("value", n.Value).Int("pos", n.Pos).Int("depth", i.data.Len()).Msg("push")
			i.data.Push(Num(n.Value))
		case Command:
			i.log.Trace().Str("op", n.Op.String()).Int("pos", n.Pos).Int("depth", i.data.Len()).Msg("exec")
			if err = i.step(n.Op); err != nil {
				return i.fail(n.Op, n.Pos, err)
			}
		case Control:
			i.log.Trace().Str("kind", n.Kind.String()).Int("pos", n.Pos).Int("depth", i.data.Len()).Msg("enter")
			err = i.control(n)
		case Block:
			err = i.exec(n.Body)
		}
		if err != nil {
			return err
		}
		i.insCount++
	}
	return nil
}

func (i *Instance) popNum() (float64, error) {
	v, err := i.data.Pop()
	if err != nil {
		return 0, err
	}
	n, ok := v.(Num)
	if !ok {
		return 0, &TypeMismatchError{Want: NumberKind, Got: v.Kind()}
	}
	return float64(n), nil
}

// pop2 pops a then b.
func (i *Instance) pop2() (a, b float64, err error) {
	if a, err = i.popNum(); err != nil {
		return
	}
	b, err = i.popNum()
	return
}

// pop3 pops a, b then c.
func (i *Instance) pop3() (a, b, c float64, err error) {
	if a, b, err = i.pop2(); err != nil {
		return
	}
	c, err = i.popNum()
	return
}

func (i *Instance) step(op Opcode) error {
	if f := binary[op]; f != nil {
		a, b, err := i.pop2()
		if err != nil {
			return err
		}
		i.data.Push(Num(f(a, b)))
		return nil
	}
	if f := unary[op]; f != nil {
		a, err := i.popNum()
		if err != nil {
			return err
		}
		i.data.Push(Num(f(a)))
		return nil
	}

	switch op {
	case OpForward:
		d, err := i.popNum()
		if err != nil {
			return err
		}
		i.turtle.Forward(d)
	case OpTurn:
		a, err := i.popNum()
		if err != nil {
			return err
		}
		i.turtle.Turn(a)
	case OpDup:
		return i.data.Dup()
	case OpSwap:
		return i.data.Swap()
	case OpPop:
		_, err := i.data.Pop()
		return err
	case OpDegree:
		i.unit(turtle.Degree)
	case OpRadian:
		i.unit(turtle.Radian)
	case OpColor:
		return i.color()
	case OpPenDown:
		i.turtle.PenDown()
	case OpPenUp:
		i.turtle.PenUp()
	case OpSize:
		w, err := i.popNum()
		if err != nil {
			return err
		}
		i.turtle.SetPenSize(w)
	case OpDebug:
		if i.output == nil {
			return nil
		}
		if _, err := fmt.Fprintln(i.output, i.Report()); err != nil {
			return errors.Wrap(err, "write failed")
		}
	case OpEuler:
		i.data.Push(Num(math.E))
	case OpDip:
		return i.data.Transfer(&i.dip)
	case OpUndip:
		return i.dip.Transfer(&i.data)
	case OpBox:
		r, g, b, err := i.pop3()
		if err != nil {
			return err
		}
		i.data.Push(Box{r, g, b})
	case OpUnbox:
		v, err := i.data.Pop()
		if err != nil {
			return err
		}
		bx, ok := v.(Box)
		if !ok {
			return &TypeMismatchError{Want: BoxKind, Got: v.Kind()}
		}
		i.data.Push(Num(bx.B))
		i.data.Push(Num(bx.G))
		i.data.Push(Num(bx.R))
	default:
		return errors.Errorf("unknown opcode %d", op)
	}
	return nil
}

// unit implements the degree and radian opcodes: query the full circle if u
// is the current unit, switch to u otherwise.
func (i *Instance) unit(u turtle.Unit) {
	if i.turtle.Unit() == u {
		i.data.Push(Num(u.FullCircle()))
		return
	}
	i.turtle.SetUnit(u)
}

// color sets the pen color from a box on TOS, or from three numbers: red on
// TOS, then green, then blue.
func (i *Instance) color() error {
	v, err := i.data.Peek()
	if err != nil {
		return err
	}
	if bx, ok := v.(Box); ok {
		if _, err = i.data.Pop(); err != nil {
			return err
		}
		i.turtle.SetColor(turtle.RGB(bx.R, bx.G, bx.B))
		return nil
	}
	r, g, b, err := i.pop3()
	if err != nil {
		return err
	}
	i.turtle.SetColor(turtle.RGB(r, g, b))
	return nil
}

// count converts a repeat count to an integer, truncating toward zero.
// Negative counts and NaN yield 0.
func count(f float64) int64 {
	switch {
	case f != f, f < 1:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(f)
}

func (i *Instance) control(c Control) error {
	switch c.Kind {
	case Repeat:
		f, err := i.popNum()
		if err != nil {
			return i.fail(c.Kind, c.Pos, err)
		}
		n := count(f)
		for k := int64(0); k < n; k++ {
			if err = i.exec(c.Body); err != nil {
				return err
			}
		}
		i.log.Debug().Int64("iterations", n).Int("pos", c.Pos).Msg("repeat done")
	case While:
		var n int64
		for {
			f, err := i.popNum()
			if err != nil {
				return i.fail(c.Kind, c.Pos, err)
			}
			if f == 0 {
				break
			}
			if err = i.exec(c.Body); err != nil {
				return err
			}
			n++
		}
		i.log.Debug().Int64("iterations", n).Int("pos", c.Pos).Msg("while done")
	case Dip:
		if err := i.data.Transfer(&i.dip); err != nil {
			return i.fail(c.Kind, c.Pos, err)
		}
		if err := i.exec(c.Body); err != nil {
			return err
		}
		if err := i.dip.Transfer(&i.data); err != nil {
			return i.fail(c.Kind, c.Pos, err)
		}
	default:
		return i.fail(c.Kind, c.Pos, errors.Errorf("unknown control structure %d", c.Kind))
	}
	return nil
}

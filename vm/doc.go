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

// Package vm implements the drw stack machine.
//
// A drw program is a tree of nodes (see Node) built by the parser package. An
// Instance walks that tree recursively against two value stacks, the data
// stack and the dip stack, and a turtle.Turtle that records every line drawn
// by the program.
//
// Values are either plain numbers (Num) or color boxes (Box). Arithmetic and
// comparison opcodes only accept numbers; handing them a box results in a
// TypeMismatchError. Popping an empty stack results in ErrStackUnderflow.
// Neither condition ever panics: Run stops at the first faulting node and
// returns an *OpError that locates it. Whatever the turtle drew up to that
// point is still available from Turtle().
//
// Opcodes:
//
//	a is the value popped first (TOS), b the value popped second (NOS).
//
//	sym	opcode	stack	description
//	---	------	-----	------------------------------------------------------
//	^	forward	d-	move forward by d, commit a segment
//	~	turn	x-	turn by x, in the current angular unit
//	.	dup	x-xx	duplicate TOS
//	:	swap	xy-yx	swap TOS and NOS
//	p	pop	x-	drop TOS
//	+	add	ba-n	a+b
//	-	sub	ba-n	a-b
//	*	mul	ba-n	a*b
//	/	div	ba-n	a/b
//	%	mod	ba-n	a mod b (sign of a, like math.Mod)
//	o	degree	-n|-	push 360 in degree mode, switch to degree mode otherwise
//	r	radian	-n|-	push 2π in radian mode, switch to radian mode otherwise
//	c	color	bgr-|x-	set the pen color from three numbers or a box
//	d	pendown	-	lower the pen
//	u	penup	-	lift the pen
//	s	size	w-	set the pen width
//	?	debug	-	print the data stack
//	P	pow	ba-n	a to the power of b
//	l	log	ba-n	logarithm of a in base b
//	e	euler	-n	push e
//	q	sqrt	a-n	square root
//	S	sin	a-n	sine
//	C	ceil	a-n	ceiling
//	f	floor	a-n	floor
//	R	round	a-n	round half away from zero
//	>	lt	ba-n	1 if a < b, else 0
//	<	gt	ba-n	1 if a > b, else 0
//	=	eq	ba-n	1 if a == b, else 0
//	D	dip	x-	move TOS to the dip stack
//	U	undip	-x	move the dip stack TOS back
//	b	box	bgr-x	pack three numbers into a color box
//	B	unbox	x-bgr	unpack a color box
//
// Control structures:
//
//	[ body ]	n-	run body n times
//	{ body }	n-	while the popped value is not 0, run body and pop again
//	( body )	x-x	set TOS aside on the dip stack, run body, restore it
package vm

/*

Inline asm register checking

Target (cpu, features, reloc model) ->
	asm.ParseArch ->
Register model (asm.Registry) ->
	LookupClass / Lookup ->
Class or Reg ->
	Validate (reserved, then predicate) ->
Usable register ->
	Emit ->
Assembly template text

Packages

	sym        interned feature names
	target     target descriptor, feature sets, presets
	asm        arch independent types, predicates, errors
	asm/xtensa xtensa classes and register table
	inlineasm  operand resolution and template expansion

*/
package compiler

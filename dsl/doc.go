// Package dsl compiles the railroad diagram notation into an expression tree
// and hands it to the railroad renderer.
//
// The notation describes one or more diagrams:
//
//	"term"      a terminal box
//	'name'      a non-terminal box
//	`text`      a comment
//	!           an empty placeholder
//	[a, b]      a sequence, left to right
//	{a, b}      a stack, top to bottom
//	<a, b>      a choice between alternatives
//	x?          x is optional
//	x*sep       x repeats with sep between repetitions
//	x#label     x drawn in a box annotated with label
//
// Postfix operators bind ? tighter than * tighter than #. Inside quoted text a
// backslash makes the following character literal.
//
// Compilation runs in two passes:
//
//   - Recognition: the Lexer and parser turn source bytes into a concrete
//     syntax tree (Document) that mirrors the grammar productions.
//   - Building: Build folds postfix modifiers, unescapes quoted text and
//     produces Expr values, which ToNode converts into railroad nodes.
//
// Usage:
//
//	d, err := dsl.Compile(src, railroad.DefaultCSS)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Diagram)
package dsl

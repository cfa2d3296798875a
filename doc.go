// Package evalex implements a floating-point arithmetic expression evaluator.
//
// An expression is made of decimal numbers, the binary operators + - * / % ^,
// parentheses, and signs on literals, as in "-(+1) + (+2)". Evaluation runs in
// four stages, each usable on its own: Tokenize turns text into tokens,
// ToPostfix reorders them with the shunting-yard algorithm, BuildTree turns the
// postfix sequence into a binary tree, and Evaluate walks the tree.
//
// All operators are left-associative by default, including ^, so "2^3^2" is
// 64. The modulo operator truncates both operands toward zero before taking
// the remainder, so "4.7 % 3" is 1.
//
// By default the pipeline is permissive: an operator without enough operands
// treats the missing ones as 0, which is how "-(5 - 2)" evaluates to -3. The
// Strict option rejects such input instead.
//
// None of the stages keep state between calls, so any number of expressions
// may be evaluated concurrently.
package evalex

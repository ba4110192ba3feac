// Package ls8 implements a two pass assembler for the LS-8 8-bit
// instruction set.
//
// Source text is classified line by line, encoded into a list of byte
// records while labels are collected, and finally linked so that every
// label reference is replaced by the address of its definition. The
// linked Program can be rendered as the textual listing format read by
// LS-8 loaders, one binary byte per line.
package ls8

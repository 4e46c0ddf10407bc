// Package compiler turns ICU message element trees into compiled messages.
//
// Element trees come from an external ICU parser, either built in Go or
// decoded from the formatjs JSON AST with DecodeElements. Compile produces a
// Message: a constant string or an expression over sorted positional
// parameters calling the helpers of the intl runtime. Messages can be bound
// in memory (Message.Bind, CompileTree) or rendered as Go source
// (CompileFile, RenderRegistry) for the intl-precompile command.
package compiler

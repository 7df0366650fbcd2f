// Package convert turns text into typed values in two ways.
//
// The general Converter is registry driven: callers ask for a Kind and the
// registered function for that kind does the work. Built-in functions are
// lenient (surrounding whitespace is ignored, booleans match any letter case),
// the way a general-purpose conversion utility behaves.
//
// The Parse* functions are the type-specific route. Each one is a strict
// wrapper over a single parser and accepts only what that parser accepts.
//
// Both routes report malformed input as a *ConversionError.
package convert

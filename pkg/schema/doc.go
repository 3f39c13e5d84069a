/*
Package schema declares the closed parameter vocabulary of every item kind.

Each kind recognizes a fixed set of parameter names, each with a type and a
system-wide default. Overrides are checked against that set at construction
time: a value of the wrong type fails with a ValidationError, and an unknown
name fails with an UnknownParameterError that carries the closest recognized
name as a suggestion; parameters are never silently dropped.
*/
package schema

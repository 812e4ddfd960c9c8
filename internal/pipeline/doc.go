// Package pipeline implements the name-to-identifier transformation core.
//
// A run takes an ordered batch of raw name strings and produces an ordered
// table of (name, identifier) records. Processing is three fixed stages:
// normalization (trim and reject empty entries), duplicate flagging
// (exact-match against earlier entries), and identifier assignment under the
// selected method. Stages are pure transformations over their input; the
// coordinator in Run owns the only chain of references between them and
// performs no I/O.
package pipeline

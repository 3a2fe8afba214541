// Package simpl models the declarable items of a Crestron SIMPL+ module: the
// closed set of kinds (digital/analog/string inputs and outputs, integer and
// string parameters), the canonical declaration each kind produces, and the
// ordered sections those declarations are grouped into.
//
// Every kind has exactly one row in a mapping table holding its role, menu
// selector, declaration keyword, suffix and prefix tokens and array defaults.
// Resolve is a pure function over that table: it never fails and performs no
// semantic checks (duplicate names, reserved words and malformed sizes pass
// through untouched).
package simpl

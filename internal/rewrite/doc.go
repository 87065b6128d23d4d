// Package rewrite turns gate-level `assign` statements into netlist-style
// gate instantiations.
//
// The rewriting is purely lexical and line oriented. An assignment such as
//
//	assign out = in1 & in2;
//
// becomes
//
//	AN2 AND_1 (out, in1, in2);
//
// and every negation `~sym` is replaced by a reference to an inverter output
// `Nsym`, declared once (`IV INVL_<n> (Nsym, sym);`) right before the first
// line that negates sym. Nothing is parsed beyond first-occurrence substring
// splits, so operators inside comments or longer identifiers are not
// recognised as such.
package rewrite

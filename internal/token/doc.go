// Package token normalizes raw ingredient and output references into the
// canonical token strings used throughout the direct ingredient map.
//
// A canonical token is "<kind>:<namespace>:<path>" where kind is one of
// item, tag, or fluid. Canonicalization is a pure string transform: it
// performs no registry validation and no tag expansion, and it passes
// unrecognized input through unchanged so callers can filter garbage on
// their own terms.
package token

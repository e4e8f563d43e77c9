// Package yahoo implements the findata.Provider interface against the
// Yahoo Finance quoteSummary API, including the cookie+crumb handshake
// the API requires.
package yahoo

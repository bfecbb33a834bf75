// Package cli implements the twota command-line surface over the account
// state store. It is presentation glue: every command parses input, calls
// one store or catalog operation, and prints the result in text or JSON.
package cli

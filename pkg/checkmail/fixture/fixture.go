// Package fixture loads address sample files and checks a validator
// against them.
//
// A sample file lists candidate addresses together with the verdict a
// format check is expected to reach:
//
//	version: 1
//	samples:
//	  - mail: "florian@carrere.cc"
//	    format: true
//	    account: true
//	  - mail: " florian@carrere.cc"
//	    format: false
//
// Mail values are used exactly as written, so quoting matters for
// leading and trailing spaces.
package fixture

// File represents the structure of a YAML sample file.
type File struct {
	// Version is the sample file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Samples is the list of candidate addresses.
	Samples []Sample `yaml:"samples"`
}

// Sample is one candidate address and its expected verdict.
type Sample struct {
	// Mail is the candidate, unmodified. Empty is a legal candidate.
	Mail string `yaml:"mail"`

	// Format is true if the address is expected to pass the syntax check.
	Format bool `yaml:"format"`

	// Account records whether the mailbox is known to exist.
	// It is kept for compatibility with richer sample files and never checked.
	Account bool `yaml:"account"`
}

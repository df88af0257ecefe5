// Package benchtest is used for benchmarking wordcase against the Go stdlib's
// strings package and golang.org/x/text/cases.
//
// It is not part of the wordcase package since the conversions compared
// here do not detect word boundaries and so produce different output.
// Instead they are a useful measure of the overhead of word segmentation
// compared to plain case mapping.
package benchtest

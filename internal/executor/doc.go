// Package executor runs the compile pass over a scanned course tree. It
// invokes the detected compiler once per present source unit, sequentially
// and in module order, classifies each outcome, and keeps the running
// tally. Exercise units are expected to be incomplete, so their compile
// failures are downgraded to "skipped"; failures of example or solution
// units are counted but never abort the remaining loop.
package executor

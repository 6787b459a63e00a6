// Package lib provide small helpers that are not particularly tied up
// with any index algorithm, like statistical histograms and loading
// settings from files.
package lib

// Package test contains helper functions to remove common boilerplate from
// test functions.
package test

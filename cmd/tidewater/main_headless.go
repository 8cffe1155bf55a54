//go:build !cgo

package main

func runWindow(options) error {
	return errNoWindow
}

//go:build js && wasm

// Command wcsimwasm builds the WebAssembly entry point: it registers the
// simulator's JS bindings and then blocks forever, the standard Go-wasm
// idiom for a program whose work happens entirely through exported
// callbacks.
package main

import "github.com/sazarkin/wcsim/internal/wasmapi"

func main() {
	wasmapi.Register()
	select {}
}

// Command intl-precompile compiles locale dictionaries of message ASTs into
// Go source files and an index that registers them with the runtime.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

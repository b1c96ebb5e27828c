// Command rootfind plots a one-variable formula and searches an interval
// for one of its roots by bisection.
//
//	rootfind plot  --expr "sin(x)" --min=-10 --max=10 --format json
//	rootfind solve --expr "x**3 - 5*x + 2" --a 0 --b 1 --tol 1e-9
//	rootfind run   --config rootfind.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command simulate runs the ads simulator offline against a YAML scenario
// and prints the results. Nothing is written to a database.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

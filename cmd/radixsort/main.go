// Command radixsort loads word lists, sorts them with the linked-list radix
// sort and prints or saves the result.
//
//	radixsort sort words.txt -o sorted.txt
//	radixsort lookup words.txt car
//	radixsort menu
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

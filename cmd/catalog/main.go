package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"botilleria/internal/catalog"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog JSON file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cat, err := catalog.LoadFile(filePath)
	if err != nil {
		log.Fatalf("load catalog %q: %v", filePath, err)
	}

	cats := cat.Categories()
	fmt.Printf("%s: %d products across %d categories\n", filePath, cat.Len(), len(cats))
	for _, c := range cats {
		n := len(cat.Filter(c, ""))
		fmt.Printf("  %-20s %d\n", c, n)
	}
}

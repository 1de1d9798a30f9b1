package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	file := flag.String("file", "", "run a Monkey source file non-interactively instead of starting the REPL")
	flag.Parse()

	if *file != "" {
		src, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("reading %s: %v", *file, err)
		}
		if err := runFile(string(src), os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	log.Printf("Monkey REPL")
	startRepl(os.Stdin, os.Stdout)
}

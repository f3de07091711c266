package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"btree/btree"
	"btree/cli"
	"btree/logger"
)

var degree *int
var loggerName *string

func main() {
	setupFlags()

	l, sync, err := logger.New(*loggerName)
	if err != nil {
		log.Fatal(err)
	}
	defer sync()

	tree, err := btree.New[string, string](*degree, btree.WithLogger(l))
	if err != nil {
		log.Fatal(err)
	}
	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", 2, "Minimum degree b of the tree; nodes hold b-1 to 2b-1 keys.")
	loggerName = flag.String("logger", "zap", "Logger backend: zap or logrus.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"btree/bench"
	"btree/logger"
)

var degree, numRecords *int
var seed *int64
var useWords, runScenario *bool
var loggerName *string

func main() {
	setupFlags()

	l, sync, err := logger.New(*loggerName)
	if err != nil {
		log.Fatal(err)
	}
	defer sync()

	rng := rand.New(rand.NewSource(*seed))

	if *runScenario {
		if err := bench.Comprehensive(*degree, *numRecords, rng, l); err != nil {
			l.Error("scenario failed", "degree", *degree, "records", *numRecords, "err", err)
			return
		}
		l.Info("scenario passed", "degree", *degree, "records", *numRecords)
		return
	}

	var report bench.Report
	if *useWords {
		report, err = bench.RunWords(*degree, bench.Words(*numRecords), l)
	} else {
		report, err = bench.Run(*degree, *numRecords, rng, l)
	}
	if err != nil {
		l.Error("bench failed", "err", err)
		return
	}
	l.Info("bench done",
		"degree", report.Degree,
		"records", report.Records,
		"height", report.Height,
		"insert", report.Insert,
		"search", report.Search,
		"delete", report.Delete,
	)
}

func setupFlags() {
	degree = flag.Int("degree", 2, "Minimum degree b of the tree; nodes hold b-1 to 2b-1 keys.")
	numRecords = flag.Int("records", 1000, "Amount of records to insert, search and delete.")
	seed = flag.Int64("seed", time.Now().UnixNano(), "Seed for the random key permutation.")
	useWords = flag.Bool("words", false, "Use string records created with go-faker instead of integers.")
	runScenario = flag.Bool("scenario", false, "Run the full insert/overwrite/delete scenario instead of timing.")
	loggerName = flag.String("logger", "zap", "Logger backend: zap or logrus.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree bench\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

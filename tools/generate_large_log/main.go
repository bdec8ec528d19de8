// Large Transaction Log Generator
//
// This tool generates a large exchange transaction log for performance
// testing and profiling. Every line follows the xtf record grammar:
//
//	USER;YYYY-MM-DD HH:MM:SS;CURRENCY;AMOUNT
//
// Usage:
//
//	go run main.go > large.log
//	go run main.go 20000000 > large.log   # Target size in bytes
//	go run main.go -gzip 20000000 > large.log.gz
package main

import (
	"bufio"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"
)

const defaultTargetSize = 10 * 1024 * 1024 // 10MB

var (
	users = []string{
		"alice", "bob", "carol", "dave", "erin",
		"trent", "mallory", "peggy", "victor", "walter",
	}

	currencies = []string{
		"BTC", "ETH", "LTC", "XRP", "DOGE",
		"USD", "EUR", "GBP", "CZK", "JPY",
	}
)

func main() {
	compress := flag.Bool("gzip", false, "gzip the generated log")
	flag.Parse()

	targetSize := defaultTargetSize
	if flag.NArg() > 0 {
		if size, err := strconv.Atoi(flag.Arg(0)); err == nil {
			targetSize = size
		}
	}

	var out io.Writer = bufio.NewWriter(os.Stdout)
	flush := func() { _ = out.(*bufio.Writer).Flush() }
	if *compress {
		zw := gzip.NewWriter(os.Stdout)
		out = zw
		flush = func() { _ = zw.Close() }
	}

	current := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	bytesWritten := 0
	recordCount := 0

	for bytesWritten < targetSize {
		line := generateRecord(current)
		n, _ := fmt.Fprintln(out, line)
		bytesWritten += n
		recordCount++

		// Advance by 1 second to 2 hours, keeping the log append-ordered.
		current = current.Add(time.Duration(rand.Intn(7200)+1) * time.Second)
	}

	flush()
	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d records\n", bytesWritten, recordCount)
}

func generateRecord(when time.Time) string {
	user := users[rand.Intn(len(users))]
	currency := currencies[rand.Intn(len(currencies))]

	// Mostly small trades, occasionally whole-unit amounts, about a
	// third of them negative.
	var amount string
	if rand.Intn(4) == 0 {
		amount = strconv.Itoa(rand.Intn(10000) + 1)
	} else {
		amount = fmt.Sprintf("%.4f", rand.Float64()*1000)
	}
	if rand.Intn(3) == 0 {
		amount = "-" + amount
	}

	return fmt.Sprintf("%s;%s;%s;%s", user, when.Format("2006-01-02 15:04:05"), currency, amount)
}

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"

	nt "tablo/entity"
	"tablo/grid"
	"tablo/pager"
	"tablo/store/duck"
)

// peek prints one page of a file without the terminal ui
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file> [page] [size]\n", os.Args[0])
		os.Exit(1)
	}

	page, size := 0, pager.DefaultSize
	if len(os.Args) > 2 {
		page = atoi(os.Args[2])
	}
	if len(os.Args) > 3 {
		size = atoi(os.Args[3])
	}

	dk, err := duck.New(&sabot.Sabot{Writer: os.Stderr})
	if err != nil {
		log.Fatalf("Failed to create Duck: %v", err)
	}
	defer dk.Close()

	if err := dk.Load(os.Args[1]); err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	fields, err := dk.Fields()
	if err != nil {
		log.Fatalf("Failed to get fields: %v", err)
	}

	fmt.Println("=== Fields ===")
	for i, field := range fields {
		fmt.Printf("  [%d] %s (%s)\n", i, field.Name, field.Type)
	}
	fmt.Println()

	src, err := dk.Source(nil)
	if err != nil {
		log.Fatalf("Failed to query: %v", err)
	}

	pgr := pager.New(size, pager.LTR).SetRows(nt.DataRowCount(src))
	for range page {
		pgr = pgr.Next()
	}

	grd, err := grid.Render(src, pgr.Window())
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	fmt.Println(grd.View(grid.Widths{}, -1))
	fmt.Println(pgr.View())
}

func atoi(in string) int {
	n, err := strconv.Atoi(in)
	if err != nil {
		log.Fatalf("Not a number: %s", in)
	}
	return n
}

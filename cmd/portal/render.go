package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func pageLine(page, pages, total int) {
	fmt.Printf("\nصفحه %d از %d (%d مورد)\n", page, pages, total)
}

func kv(pairs ...[2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, pair := range pairs {
		fmt.Fprintf(w, "%s\t%s\n", pair[0], pair[1])
	}
	w.Flush()
}

func yesNo(v bool) string {
	if v {
		return "بله"
	}
	return "خیر"
}

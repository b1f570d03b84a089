package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"prunarr/internal/library"
)

// formatSize renders a byte count as gigabytes with two decimals, matching
// the sizes Radarr shows in its own UI summaries.
func formatSize(sizeBytes int64) string {
	gb := float64(sizeBytes) / (1 << 30)
	return fmt.Sprintf("%.2f GB", gb)
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirm prints the prompt and reads a yes/no answer. Only an explicit
// "y"/"yes" counts as confirmation; everything else, including EOF, is a no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// parseSelection parses a human selection like "1,3-5" against a list of
// max entries numbered from 1. Returned indexes are zero-based, sorted, and
// deduplicated.
func parseSelection(input string, max int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	picked := make(map[int]struct{})
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := parseEntryNumber(lo, max)
			if err != nil {
				return nil, err
			}
			end, err := parseEntryNumber(hi, max)
			if err != nil {
				return nil, err
			}
			if end < start {
				return nil, fmt.Errorf("invalid range %q", part)
			}
			for n := start; n <= end; n++ {
				picked[n-1] = struct{}{}
			}
			continue
		}
		n, err := parseEntryNumber(part, max)
		if err != nil {
			return nil, err
		}
		picked[n-1] = struct{}{}
	}

	out := make([]int, 0, len(picked))
	for idx := range picked {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out, nil
}

func parseEntryNumber(value string, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid entry number %q", value)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("entry number %d out of range (1-%d)", n, max)
	}
	return n, nil
}

// movieRows builds table rows for a list of items. isKept may be nil when
// the keep column is not shown.
func movieRows(items []library.Item, isKept func(int64) bool) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		year := ""
		if item.Year > 0 {
			year = strconv.Itoa(item.Year)
		}
		row := []string{
			item.Title,
			year,
			formatSize(item.SizeOnDisk),
			strings.Join(item.Genres, ", "),
		}
		if isKept != nil {
			kept := ""
			if isKept(item.ID) {
				kept = "yes"
			}
			row = append(row, kept)
		}
		rows = append(rows, row)
	}
	return rows
}

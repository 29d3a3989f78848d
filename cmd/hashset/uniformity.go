package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/noncombatant/hashset"
	"github.com/noncombatant/hashset/hashutil"
)

const (
	defaultWordFile = "/usr/share/dict/words"

	// Sized so that a typical system word list lands around a load factor
	// of 3. Rounding up to primes buys little here; see BucketSizes output.
	wordBuckets = 80000
)

// runUniformity loads a word list into one table per hash function and
// prints each table's chain-length histogram. A good hasher shows mostly
// short chains and few empty buckets.
func runUniformity(path string) error {
	words, err := readWords(path)
	if err != nil {
		return err
	}

	hashers := []struct {
		name string
		hash hashset.Hasher[string]
	}{
		{"poly31", hashutil.String31},
		{"xxhash", hashutil.String},
		{"murmur3", hashutil.StringMurmur3},
		{"xxh3", hashutil.StringXXH3},
	}
	for _, h := range hashers {
		if err := reportUniformity(h.name, h.hash, words); err != nil {
			return err
		}
	}
	return nil
}

func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

func reportUniformity(name string, hash hashset.Hasher[string], words []string) error {
	table, err := hashset.New[string](wordBuckets, hash, strings.Compare)
	if err != nil {
		return err
	}
	for _, word := range words {
		table.Add(word)
	}

	// Histogram the chain lengths with a small map keyed by length.
	counts, err := hashset.NewMap[int, int](64, func(size int) uint64 { return uint64(size) }, hashutil.Compare[int])
	if err != nil {
		return err
	}
	longest := 0
	for _, size := range table.BucketSizes() {
		n, _ := counts.Get(size)
		counts.Set(size, n+1)
		if size > longest {
			longest = size
		}
	}

	fmt.Printf("%s: %d words in %d buckets, longest chain %d\n",
		name, table.Len(), table.BucketCount(), longest)
	fmt.Println("  chain-length bucket-count")
	for size := 0; size <= longest; size++ {
		if n, ok := counts.Get(size); ok {
			fmt.Printf("  %12d %12d\n", size, n)
		}
	}
	return nil
}

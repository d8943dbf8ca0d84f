package main

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/internal/config"
	"github.com/rs/zerolog"
	"math/rand"
	"os"
	"strings"
)

// keyAlphabet - Characters of generated keys
const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

// entry - Item counting occurrences of a key
type entry struct {
	Key   string
	Count int
}

// run - Loads the keys into one table per hash algorithm and logs the bucket statistics of each
func run(conf config.Config, log zerolog.Logger) error {
	keys, err := loadKeys(conf)
	if err != nil {
		return err
	}
	log.Info().Int("keys", len(keys)).Str("source", keySource(conf)).Msg("keys loaded")

	for _, name := range conf.Algorithms {
		stat, err := measure(conf, name, keys, log)
		if err != nil {
			return err
		}

		event := log.Info().
			Str("algorithm", name).
			Int64("records", stat.Records).
			Int64("buckets", stat.Buckets).
			Int64("usedBuckets", stat.UsedBuckets).
			Int64("longestChain", stat.LongestChain).
			Float64("averageChain", stat.AverageChain)
		if conf.Distribution {
			event = event.Ints64("distribution", stat.BucketDistribution)
		}
		event.Msg("bucket statistics")
	}

	return nil
}

// measure - Loads keys into a table using the named hash algorithm and returns its statistics
func measure(conf config.Config, name string, keys []string, log zerolog.Logger) (stat hashtable.HashTableStat, err error) {
	hashAlgorithm, err := hashtable.HashAlgorithmByName(name)
	if err != nil {
		return
	}

	storage := hashtable.External
	if s := strings.ToLower(conf.Storage); s == "intable" || s == "in-table" {
		storage = hashtable.InTable
	}

	tableLog := log.With().Str("algorithm", name).Logger()
	ht, _, err := hashtable.New(hashtable.Conf[entry]{
		Size:          conf.Size,
		Storage:       storage,
		CaseSensitive: conf.CaseSensitive,
		Sorted:        conf.Sorted,
		Key:           hashtable.StringKey(func(e *entry) *string { return &e.Key }),
		HashAlgorithm: hashAlgorithm,
		Logger:        &tableLog,
	})
	if err != nil {
		return
	}
	defer ht.Destroy()

	for _, key := range keys {
		var item *entry
		item, _, err = ht.GetOrCreateItem(key)
		if err != nil {
			return
		}
		item.Count++
	}

	stat = ht.Stat(conf.Distribution)

	return
}

// loadKeys - Reads keys from the configured file, one per line skipping empty lines, or generates random ones
func loadKeys(conf config.Config) (keys []string, err error) {
	if conf.KeysFile == "" {
		return generateKeys(conf.Keys, conf.KeyLength, conf.Seed), nil
	}

	f, err := os.Open(conf.KeysFile)
	if err != nil {
		err = fmt.Errorf("error while opening keys file: %s", err)
		return
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			keys = append(keys, line)
		}
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading keys file: %s", err)
	}

	return
}

// generateKeys - Returns n random keys of the given length
func generateKeys(n, length int, seed int64) []string {
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	b := make([]byte, length)
	for i := range keys {
		for j := range b {
			b[j] = keyAlphabet[rnd.Intn(len(keyAlphabet))]
		}
		keys[i] = string(b)
	}

	return keys
}

// keySource - Describes where keys come from
func keySource(conf config.Config) string {
	if conf.KeysFile != "" {
		return conf.KeysFile
	}
	return "generated"
}

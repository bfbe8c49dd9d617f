package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/gostonefire/linearhashing"
	"github.com/gostonefire/linearhashing/internal/conf"
	"github.com/gostonefire/linearhashing/internal/utils"
	"io"
	"log"
	"math/rand"
	"os"
	"time"
)

func main() {
	size := flag.Int("size", conf.DefaultDriverKeys, "number of generated keys 0..size-1, ignored when -keys is given")
	keysFile := flag.String("keys", "", "file with whitespace separated keys, non-numeric tokens are hashed")
	m := flag.Int("m", conf.DefaultInitialBuckets, "initial number of buckets")
	pageCapacity := flag.Int("page", conf.DefaultPageCapacity, "key slots per page")
	alphaMax := flag.Float64("alpha-max", conf.DefaultAlphaMax, "load factor that triggers a split")
	alphaMin := flag.Float64("alpha-min", conf.DefaultAlphaMin, "lower load factor bound")
	seed := flag.Int64("seed", 0, "shuffle seed, 0 picks a time based seed")
	display := flag.Bool("display", false, "print every bucket chain after loading")
	flag.Parse()

	keys := utils.Sequence(*size)
	if *keysFile != "" {
		var err error
		keys, err = readKeys(*keysFile)
		if err != nil {
			log.Fatalf("error while reading keys: %s", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	utils.Shuffle(keys, rand.New(rand.NewSource(*seed)))

	table, err := linearhashing.Create(*m, *pageCapacity, *alphaMax, *alphaMin)
	if err != nil {
		log.Fatalf("error while creating table: %s", err)
	}

	for _, key := range keys {
		if err = table.Insert(key); err != nil {
			log.Fatalf("error while inserting key %d: %s", key, err)
		}
	}

	var accesses, missing int
	for _, key := range keys {
		result, err := table.Search(key)
		if err != nil {
			log.Fatalf("error while searching key %d: %s", key, err)
		}
		accesses += result.PageAccesses
		if !result.Found {
			missing++
		}
	}

	maxChain, err := table.MaxChainLength()
	if err != nil {
		log.Fatalf("error while measuring chains: %s", err)
	}

	if *display {
		if err = table.Display(os.Stdout); err != nil {
			log.Fatalf("error while displaying table: %s", err)
		}
	}

	log.Printf("seed %d: %d keys, %d pages, %d buckets, level %d, split pointer %d",
		*seed, table.Len(), table.Pages(), table.Buckets(), table.Level(), table.SplitPointer())
	log.Printf("load factor %.3f, max chain length %d", table.LoadFactor(), maxChain)
	if len(keys) > 0 {
		log.Printf("average page accesses per search %.3f", float64(accesses)/float64(len(keys)))
	}
	if missing > 0 {
		log.Fatalf("%d keys not found after insert", missing)
	}

	// Error paths above exit the process, which releases the table with it
	if err = table.Destroy(); err != nil {
		log.Fatalf("error while destroying table: %s", err)
	}
}

// readKeys - Reads whitespace separated keys from fileName
func readKeys(fileName string) (keys []int64, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	keys, err = scanKeys(f)
	if err != nil {
		err = fmt.Errorf("error while scanning %s: %s", fileName, err)
	}

	return
}

// scanKeys - Turns every whitespace separated token of r into a key
func scanKeys(r io.Reader) (keys []int64, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		key, _ := utils.ParseKey(scanner.Text())
		keys = append(keys, key)
	}
	err = scanner.Err()

	return
}

package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	hashtable "github.com/samya-ak/hash-table"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := hashtable.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := hashtable.LoadConfig(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	ht, err := hashtable.New(cfg, hashtable.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer ht.Destroy()

	fmt.Printf("Hash table created with %d buckets\n", ht.Size())

	// Insert some data
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key-%d", i)
		value := fmt.Sprintf("%d", i*100)

		if err := ht.Insert(key, value); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	fmt.Println("Inserted 10 key-value pairs")

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)

		if value, found := ht.Search(key); found {
			fmt.Printf("%s => %s\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	if err := ht.Insert("key-2", "999"); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}
	if value, found := ht.Search("key-2"); found {
		fmt.Printf("Updated key-2 => %s\n", value)
	}

	// Delete a value, leaving a tombstone
	ht.Delete("key-4")
	if _, found := ht.Search("key-4"); !found {
		fmt.Println("Deleted key-4")
	}

	// Fill the remaining buckets
	for i := 10; ; i++ {
		err := ht.Insert(fmt.Sprintf("key-%d", i), "filler")
		if errors.Is(err, hashtable.ErrCapacityExceeded) {
			fmt.Printf("Table full after %d entries: %v\n", ht.Len(), err)
			break
		}
		if err != nil {
			log.Fatalf("Failed to insert filler: %v", err)
		}
	}

	stats := ht.Stats()
	fmt.Printf("Size=%d Count=%d Tombstones=%d LoadFactor=%.2f\n",
		stats.Size, stats.Count, stats.Tombstones, stats.LoadFactor)

	fmt.Println("Example completed successfully")
}

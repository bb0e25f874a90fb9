/*
Package hashtable provides a fixed-size string hash table using open addressing
with double hashing.

Table maps string keys to string values in a fixed number of buckets chosen at
construction time. The table never grows: once every bucket holds a live entry
or a tombstone, inserting a new key fails with ErrCapacityExceeded.

Basic usage:

	import hashtable "github.com/samya-ak/hash-table"

	// 53 buckets, polynomial double hashing with bases 151 and 177
	t := hashtable.Create()
	defer t.Destroy()

	if err := t.Insert("cat", "mammal"); err != nil {
		log.Fatal(err)
	}

	if v, ok := t.Search("cat"); ok {
		fmt.Println("cat is a", v)
	}

	t.Delete("cat")

A table with a different bucket count or hasher is built from a Config:

	cfg := hashtable.DefaultConfig()
	cfg.Size = 1009
	cfg.Hasher = hashtable.HasherXX
	t, err := hashtable.New(cfg, hashtable.WithLogger(slog.Default()))

Features:

  - Fixed bucket count, validated to be prime
  - Double hashing over two polynomial string hashes, or xxHash
  - Tombstone deletion with tombstone reuse on insert
  - Every probe walk bounded by the bucket count
  - Keys and values are copied on insert and never alias caller memory

Implementation Details:

Each slot is Empty, Tombstone or Occupied. The probe index for attempt i is

	(hashA + i*step) mod size,  step = 1 + hashB mod (size-1)

For every hashB below size-1 the step equals hashB+1. Because size is prime and
1 <= step < size, step and size are coprime, so attempts 0..size-1 visit every
bucket exactly once.

Search and Delete stop at the first Empty slot and walk past Tombstones. Insert
remembers the first Tombstone it passes and keeps probing until it finds the key
or an Empty slot, so a key is never stored twice.

Table is not safe for concurrent use.
*/
package hashtable

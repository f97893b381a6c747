// Package boltdb exposes bolt buckets as bidirectional cursors.
//
// Keys are 8 byte big endian sequence numbers, so a bucket iterates in insertion order.
// Values are JSON documents.
package boltdb

import (
	"context"
	"encoding/binary"

	"github.com/boltdb/bolt"
	"github.com/goccy/go-json"

	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/logging"
)

const (
	ErrBucketNotFound errorkit.Error = "ErrBucketNotFound"
	ErrDecode         errorkit.Error = "ErrDecode"
)

// Entry is a key/value pair of a bucket.
// Both slices point into the transaction's memory map, and are only valid until the transaction ends.
type Entry struct {
	Key   []byte
	Value []byte
}

type position int8

const (
	beforeFirst position = iota
	onEntry
	afterLast
)

// Cursor is a bidirectional cursor over the entries of a bucket.
//
// bolt's own cursor has no notion of the positions before the first and after the last entry,
// so Cursor tracks them itself and re-enters the bucket with First or Last.
type Cursor struct {
	c     *bolt.Cursor
	pos   position
	entry Entry
}

var _ cursorkit.BiCursor[Entry] = &Cursor{}

// NewCursor opens a cursor positioned on the first entry of the bucket.
// The cursor must not be used after tx is closed.
func NewCursor(tx *bolt.Tx, bucket []byte) (*Cursor, error) {
	b := tx.Bucket(bucket)
	if b == nil {
		return nil, ErrBucketNotFound.F("no bucket named %q", bucket)
	}
	c := &Cursor{c: b.Cursor(), pos: beforeFirst}
	c.Advance()
	return c, nil
}

func (c *Cursor) Current() (Entry, bool) {
	if c.pos != onEntry {
		return Entry{}, false
	}
	return c.entry, true
}

func (c *Cursor) Advance() {
	switch c.pos {
	case beforeFirst:
		k, v := c.c.First()
		c.set(k, v, afterLast)
	case onEntry:
		k, v := c.c.Next()
		c.set(k, v, afterLast)
	}
}

func (c *Cursor) SkipBack() {
	switch c.pos {
	case afterLast:
		k, v := c.c.Last()
		c.set(k, v, beforeFirst)
	case onEntry:
		k, v := c.c.Prev()
		c.set(k, v, beforeFirst)
	}
}

func (c *Cursor) set(key, value []byte, whenMissing position) {
	if key == nil {
		c.pos, c.entry = whenMissing, Entry{}
		return
	}
	c.pos, c.entry = onEntry, Entry{Key: key, Value: value}
}

// View runs fn with a cursor over bucket, inside a read-only transaction.
func View(db *bolt.DB, bucket []byte, fn func(c *Cursor) error) (rErr error) {
	tx, err := db.Begin(false)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, tx.Rollback)
	c, err := NewCursor(tx, bucket)
	if err != nil {
		return err
	}
	return fn(c)
}

// Append stores vs at the end of bucket, creating it when needed.
// It returns the keys assigned to the values.
func Append[T any](db *bolt.DB, bucket []byte, vs ...T) ([][]byte, error) {
	var keys [][]byte
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		for _, v := range vs {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			key := Key(seq)
			if err := b.Put(key, data); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logging.Debug(context.Background(), "entries appended",
		logging.Field("bucket", string(bucket)),
		logging.Field("count", len(keys)))
	return keys, nil
}

// Key returns the 8 byte big endian key of a sequence number.
func Key(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

// Sequence is the inverse of Key.
func Sequence(key []byte) uint64 {
	if len(key) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(key)
}

// Decode unmarshals the value of an entry.
func Decode[T any](e Entry) (T, error) {
	var v T
	if err := json.Unmarshal(e.Value, &v); err != nil {
		return v, ErrDecode.F("entry %d: %w", Sequence(e.Key), err)
	}
	return v, nil
}

// Values is a bidirectional cursor over the decoded values of a bucket.
// Decoding failures exhaust the cursor, and are reported by Err.
type Values[T any] struct {
	Cursor *Cursor
	err    error
}

var _ cursorkit.BiCursor[int] = &Values[int]{}

func (vs *Values[T]) Current() (T, bool) {
	var zero T
	if vs.err != nil {
		return zero, false
	}
	e, ok := vs.Cursor.Current()
	if !ok {
		return zero, false
	}
	v, err := Decode[T](e)
	if err != nil {
		vs.err = err
		return zero, false
	}
	return v, true
}

func (vs *Values[T]) Advance() { vs.Cursor.Advance() }

func (vs *Values[T]) SkipBack() { vs.Cursor.SkipBack() }

func (vs *Values[T]) Err() error { return vs.err }

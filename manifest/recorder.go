// Package manifest records what a generation run produced into a SQLite
// database, so a batch of thousands of config files can be queried
// without walking the output tree.
package manifest

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// Entry is one row of the manifest: a single written config record.
type Entry struct {
	Set          string
	TestName     string
	Benchmark    string
	VariationTag string
	Path         string
}

// Recorder buffers entries and writes them to the database in batches.
type Recorder struct {
	db *sql.DB

	entries   []Entry
	batchSize int
}

// New creates a Recorder backed by a fresh SQLite file at path (the
// ".sqlite3" suffix is appended). An empty path gets an xid-based name.
// An existing file is never clobbered. A flush is registered to run at
// exit so short-lived runs do not lose buffered rows.
func New(path string) *Recorder {
	if path == "" {
		path = "cachescape_manifest_" + xid.New().String()
	}

	filename := path + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Manifest database: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r := newWithDB(db)
	atexit.Register(func() { r.Flush() })

	return r
}

// NewWithDB creates a Recorder on an already-open database.
func NewWithDB(db *sql.DB) *Recorder {
	return newWithDB(db)
}

func newWithDB(db *sql.DB) *Recorder {
	r := &Recorder{
		db:        db,
		batchSize: 10000,
	}

	r.mustExecute(`CREATE TABLE IF NOT EXISTS records (
	SetID TEXT,
	TestName TEXT,
	Benchmark TEXT,
	VariationTag TEXT,
	Path TEXT
);`)

	return r
}

// Record buffers one entry, flushing when the batch is full.
func (r *Recorder) Record(e Entry) {
	r.entries = append(r.entries, e)

	if len(r.entries) >= r.batchSize {
		r.Flush()
	}
}

// Flush writes all buffered entries in one transaction.
func (r *Recorder) Flush() {
	if len(r.entries) == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	stmt, err := r.db.Prepare(
		"INSERT INTO records VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		panic(err)
	}
	defer stmt.Close()

	for _, e := range r.entries {
		_, err := stmt.Exec(
			e.Set, e.TestName, e.Benchmark, e.VariationTag, e.Path)
		if err != nil {
			panic(err)
		}
	}

	r.entries = nil
}

func (r *Recorder) mustExecute(query string) {
	if _, err := r.db.Exec(query); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute: %s\n", query)
		panic(err)
	}
}

// Close flushes and closes the underlying database.
func (r *Recorder) Close() error {
	r.Flush()

	return r.db.Close()
}

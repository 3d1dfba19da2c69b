package dataset

import (
	"errors"
	"os"
)

// ErrNotFound is returned when a transaction with the given ID is not found.
var ErrNotFound = errors.New("transaction not found")

// ErrEmptyDataset is returned when trying to serve an empty dataset.
var ErrEmptyDataset = errors.New("empty dataset")

// Storage is the read-only interface over the loaded dataset. The file is
// written once by the generator and never mutated, so there is no Set.
type Storage interface {
	All() []Transaction
	Read(id int64) (*Transaction, error)
	Len() int
	SizeBytes() int64
}

// MemoryStorage holds the whole dataset in memory, in file order.
type MemoryStorage struct {
	txs       []Transaction
	sizeBytes int64
}

// NewMemoryStorage wraps an already-generated slice of transactions.
func NewMemoryStorage(txs []Transaction) *MemoryStorage {
	return &MemoryStorage{txs: txs}
}

// LoadCSV reads the dataset file at path into a MemoryStorage.
// Returns ErrEmptyDataset if the file has a header but no rows.
func LoadCSV(path string) (*MemoryStorage, error) {
	txs, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ErrEmptyDataset
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	return &MemoryStorage{txs: txs, sizeBytes: size}, nil
}

// All returns every transaction in file order. Callers must not mutate it.
func (m *MemoryStorage) All() []Transaction {
	return m.txs
}

// Read retrieves one transaction by its ID.
// Returns ErrNotFound if no row carries that ID.
func (m *MemoryStorage) Read(id int64) (*Transaction, error) {
	// IDs are sequential from 1 in generated files, try direct indexing first.
	if id >= 1 && id <= int64(len(m.txs)) && m.txs[id-1].TransactionID == id {
		return &m.txs[id-1], nil
	}
	for i := range m.txs {
		if m.txs[i].TransactionID == id {
			return &m.txs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Len returns the number of rows loaded.
func (m *MemoryStorage) Len() int {
	return len(m.txs)
}

// SizeBytes returns the on-disk size of the source CSV, zero if unknown.
func (m *MemoryStorage) SizeBytes() int64 {
	return m.sizeBytes
}

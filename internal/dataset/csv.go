package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// timestampLayout matches the format the generator writes, second resolution.
const timestampLayout = "2006-01-02 15:04:05"

// WriteCSV streams the transactions to path with the fixed column header.
func WriteCSV(path string, txs []Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(Columns))
	for i := range txs {
		t := &txs[i]
		record[0] = strconv.FormatInt(t.TransactionID, 10)
		record[1] = t.Timestamp.Format(timestampLayout)
		record[2] = strconv.FormatInt(t.CustomerID, 10)
		record[3] = t.Category
		record[4] = strconv.FormatInt(t.ProductID, 10)
		record[5] = formatFloat(t.UnitPrice)
		record[6] = strconv.Itoa(t.Quantity)
		record[7] = formatFloat(t.Discount)
		record[8] = formatFloat(t.Subtotal)
		record[9] = formatFloat(t.TaxRate)
		record[10] = formatFloat(t.Tax)
		record[11] = formatFloat(t.Total)
		record[12] = t.PaymentMethod
		record[13] = t.Region
		record[14] = t.City
		record[15] = t.Status
		record[16] = strconv.FormatBool(t.IsMember)
		if t.Rating != nil {
			record[17] = strconv.Itoa(*t.Rating)
		} else {
			record[17] = ""
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", t.TransactionID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV loads the full dataset from path. The header must match Columns.
func ReadCSV(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if len(header) != len(Columns) {
		return nil, fmt.Errorf("unexpected column count in %s: got %d, want %d", path, len(header), len(Columns))
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected column %d in %s: got %q, want %q", i, path, header[i], name)
		}
	}

	var txs []Transaction
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s line %d: %w", path, line+1, err)
		}
		line++

		t, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("malformed row at %s line %d: %w", path, line, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func parseRecord(record []string) (Transaction, error) {
	var t Transaction
	var err error

	if t.TransactionID, err = strconv.ParseInt(record[0], 10, 64); err != nil {
		return t, fmt.Errorf("transaction_id: %w", err)
	}
	if t.Timestamp, err = time.ParseInLocation(timestampLayout, record[1], time.UTC); err != nil {
		return t, fmt.Errorf("timestamp: %w", err)
	}
	if t.CustomerID, err = strconv.ParseInt(record[2], 10, 64); err != nil {
		return t, fmt.Errorf("customer_id: %w", err)
	}
	t.Category = record[3]
	if t.ProductID, err = strconv.ParseInt(record[4], 10, 64); err != nil {
		return t, fmt.Errorf("product_id: %w", err)
	}
	if t.UnitPrice, err = strconv.ParseFloat(record[5], 64); err != nil {
		return t, fmt.Errorf("unit_price: %w", err)
	}
	if t.Quantity, err = strconv.Atoi(record[6]); err != nil {
		return t, fmt.Errorf("quantity: %w", err)
	}
	if t.Discount, err = strconv.ParseFloat(record[7], 64); err != nil {
		return t, fmt.Errorf("discount: %w", err)
	}
	if t.Subtotal, err = strconv.ParseFloat(record[8], 64); err != nil {
		return t, fmt.Errorf("subtotal: %w", err)
	}
	if t.TaxRate, err = strconv.ParseFloat(record[9], 64); err != nil {
		return t, fmt.Errorf("tax_rate: %w", err)
	}
	if t.Tax, err = strconv.ParseFloat(record[10], 64); err != nil {
		return t, fmt.Errorf("tax: %w", err)
	}
	if t.Total, err = strconv.ParseFloat(record[11], 64); err != nil {
		return t, fmt.Errorf("total: %w", err)
	}
	t.PaymentMethod = record[12]
	t.Region = record[13]
	t.City = record[14]
	t.Status = record[15]
	if t.IsMember, err = strconv.ParseBool(record[16]); err != nil {
		return t, fmt.Errorf("is_member: %w", err)
	}
	if record[17] != "" {
		rating, err := strconv.Atoi(record[17])
		if err != nil {
			return t, fmt.Errorf("rating: %w", err)
		}
		t.Rating = &rating
	}
	return t, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

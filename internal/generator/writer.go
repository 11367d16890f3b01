package generator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vanshika/creatorgen/internal/domain"
)

// WriteDocument serializes the dataset as indented JSON at path, creating the
// parent directory when needed.
func WriteDocument(doc domain.Document, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	if err := EncodeDocument(file, doc); err != nil {
		file.Close()
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// EncodeDocument writes the dataset to w as indented JSON.
func EncodeDocument(w io.Writer, doc domain.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// ReadDocument loads a dataset previously written by WriteDocument.
func ReadDocument(path string) (domain.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var doc domain.Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return domain.Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

var transactionCSVHeader = []string{
	"id", "timestamp", "channel", "creatorAlias", "fanId",
	"amount", "isRefunded", "refundTimestamp", "refundAmount",
}

// WriteTransactionsCSV writes one row per transaction with a header row.
// Amounts keep two decimals; a missing refund timestamp is an empty cell.
func WriteTransactionsCSV(w io.Writer, transactions []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range transactions {
		refundTimestamp := ""
		if tx.RefundTimestamp != nil {
			refundTimestamp = *tx.RefundTimestamp
		}
		record := []string{
			tx.ID,
			tx.Timestamp,
			string(tx.Channel),
			tx.CreatorAlias,
			tx.FanID,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			strconv.FormatBool(tx.IsRefunded),
			refundTimestamp,
			strconv.FormatFloat(tx.RefundAmount, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

package repository

import (
	"encoding/json"
	"log"
	"os"

	"primefinish/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// The bucket payloads are stored as JSON arrays. A payload that is missing or
// fails to parse reads as an empty list: persistence problems degrade to "no
// data" rather than failing the operation.

func decodeRecords(name string, payload []byte) []entities.Record {
	var records []entities.Record
	if !decodeList(name, payload, &records) {
		return nil
	}
	return records
}

func decodeCostOptions(name string, payload []byte) []entities.CostOption {
	var options []entities.CostOption
	if !decodeList(name, payload, &options) {
		return nil
	}
	return options
}

func decodeExpenses(payload []byte) []entities.Expense {
	var expenses []entities.Expense
	if !decodeList(entities.KeyDirectExpenses, payload, &expenses) {
		return nil
	}
	return expenses
}

func decodeStaffPayments(payload []byte) []entities.StaffPayment {
	var payments []entities.StaffPayment
	if !decodeList(entities.KeyStaffPayments, payload, &payments) {
		return nil
	}
	return payments
}

func decodeList(name string, payload []byte, out any) bool {
	if len(payload) == 0 {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Printf("[store] treating malformed %q payload as empty: %v", name, err)
		return false
	}
	return true
}

func encodeList(v any) ([]byte, error) {
	return json.Marshal(v)
}

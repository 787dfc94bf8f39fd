package repository

import (
	"testing"
	"time"
)

func TestProjectRows(t *testing.T) {
	rows := []transactionRow{
		{
			CollectID:         "c-1",
			SchoolID:          "S1",
			Gateway:           "PhonePe",
			OrderAmount:       2500,
			TransactionAmount: 2500,
			Status:            "success",
			CustomOrderID:     "c-1",
			PaymentTime:       time.Date(2024, 1, 20, 10, 35, 0, 0, time.UTC),
			StudentName:       "Rahul Sharma",
			StudentID:         "STU2024001",
			StudentEmail:      "rahul.sharma@school.edu",
		},
	}

	unscoped := projectRows(rows, false)
	if len(unscoped) != 1 {
		t.Fatalf("rows = %d", len(unscoped))
	}
	if unscoped[0].StudentInfo != nil {
		t.Error("unscoped projection must not carry student info")
	}
	if unscoped[0].SchoolID != "S1" || unscoped[0].Gateway != "PhonePe" || unscoped[0].CustomOrderID != "c-1" {
		t.Errorf("projection = %+v", unscoped[0])
	}

	scoped := projectRows(rows, true)
	if scoped[0].StudentInfo == nil {
		t.Fatal("scoped projection missing student info")
	}
	if scoped[0].StudentInfo.Name != "Rahul Sharma" || scoped[0].StudentInfo.ID != "STU2024001" {
		t.Errorf("student info = %+v", scoped[0].StudentInfo)
	}
}

func TestSortColumnsWhitelist(t *testing.T) {
	for _, field := range []string{
		"collect_id", "school_id", "gateway", "order_amount",
		"transaction_amount", "status", "custom_order_id",
		"payment_time", "created_at",
	} {
		if _, ok := sortColumns[field]; !ok {
			t.Errorf("sortable field %q missing from whitelist", field)
		}
	}
	if _, ok := sortColumns["school_id; DROP TABLE orders"]; ok {
		t.Error("whitelist must reject arbitrary expressions")
	}
}

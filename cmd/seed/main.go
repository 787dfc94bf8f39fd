package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"school-payments-api/config"
	"school-payments-api/internal/models"
	"school-payments-api/internal/repository"
)

// Seeds the database with a small set of sample orders and statuses for
// local development. Wipes existing order data first.
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.Exec("DELETE FROM order_statuses").Error; err != nil {
		log.Fatalf("failed to clear order statuses: %v", err)
	}
	if err := db.Exec("DELETE FROM orders").Error; err != nil {
		log.Fatalf("failed to clear orders: %v", err)
	}

	orders := []models.Order{
		{
			SchoolID:    "65b0e6293e9f76a9694d84b4",
			TrusteeID:   "65b0e552dd31950a9b41c5ba",
			StudentInfo: models.StudentInfo{Name: "Rahul Sharma", ID: "STU2024001", Email: "rahul.sharma@school.edu"},
			GatewayName: "PhonePe",
			OrderAmount: 2500,
		},
		{
			SchoolID:    "65b0e6293e9f76a9694d84b4",
			TrusteeID:   "65b0e552dd31950a9b41c5ba",
			StudentInfo: models.StudentInfo{Name: "Priya Patel", ID: "STU2024002", Email: "priya.patel@school.edu"},
			GatewayName: "Razorpay",
			OrderAmount: 1800,
		},
		{
			SchoolID:    "65b0e6293e9f76a9694d84b4",
			TrusteeID:   "65b0e552dd31950a9b41c5ba",
			StudentInfo: models.StudentInfo{Name: "Amit Kumar", ID: "STU2024003", Email: "amit.kumar@school.edu"},
			GatewayName: "Stripe",
			OrderAmount: 3200,
		},
	}

	statuses := []models.OrderStatus{
		{
			OrderAmount:       2500,
			TransactionAmount: 2500,
			PaymentMode:       "upi",
			PaymentDetails:    "success@ybl",
			BankReference:     "YESBNK2024001",
			PaymentMessage:    "Payment successful",
			Status:            "success",
			ErrorMessage:      "NA",
			PaymentTime:       time.Date(2024, 1, 20, 10, 35, 0, 0, time.UTC),
		},
		{
			OrderAmount:       1800,
			TransactionAmount: 1800,
			PaymentMode:       "card",
			PaymentDetails:    "4242********4242",
			BankReference:     "HDFCBNK2024002",
			PaymentMessage:    "Payment pending",
			Status:            "pending",
			ErrorMessage:      "NA",
			PaymentTime:       time.Date(2024, 1, 21, 14, 50, 0, 0, time.UTC),
		},
		{
			OrderAmount:       3200,
			TransactionAmount: 0,
			PaymentMode:       "netbanking",
			PaymentDetails:    "failed@ybl",
			BankReference:     "ICICBNK2024003",
			PaymentMessage:    "Payment failed",
			Status:            "failed",
			ErrorMessage:      "Insufficient funds",
			PaymentTime:       time.Date(2024, 1, 22, 9, 20, 0, 0, time.UTC),
		},
	}

	orderRepo := repository.NewOrderRepository(db)
	statusRepo := repository.NewOrderStatusRepository(db)

	for i := range orders {
		if err := orderRepo.Create(&orders[i]); err != nil {
			log.Fatalf("failed to seed order: %v", err)
		}
		statuses[i].CollectID = orders[i].ID
		if err := statusRepo.Upsert(&statuses[i]); err != nil {
			log.Fatalf("failed to seed order status: %v", err)
		}
	}

	log.Printf("Seeded %d orders and %d order statuses", len(orders), len(statuses))
}

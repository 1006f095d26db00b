package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             int
	FirstName      string
	LastName       string
	Gender         string
	Email          string
	Phone          string
	Address        string
	City           string
	State          string
	Country        string
	DateRegistered time.Time
}

type Category struct {
	ID   int
	Name string
}

type Supplier struct {
	ID          int
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
}

type Product struct {
	ID          int
	Name        string
	CategoryID  int
	SupplierID  int
	Price       decimal.Decimal
	Description string
	DateAdded   time.Time
}

type Order struct {
	ID          int
	CustomerID  int
	ProductID   int
	Quantity    int
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	Status      Status
}

type Payment struct {
	ID          int
	OrderID     int
	Method      string
	Amount      decimal.Decimal
	PaymentDate time.Time
}

type Shipment struct {
	ID             int
	OrderID        int
	ShipmentDate   time.Time
	Carrier        string
	TrackingNumber string
}

type Review struct {
	ID         int
	ProductID  int
	CustomerID int
	Rating     int
	Comment    string
	ReviewDate time.Time
}

type Inventory struct {
	ID              int
	ProductID       int
	QuantityInStock int
	ReorderLevel    int
}

type Discount struct {
	ID      int
	OrderID int
	Amount  decimal.Decimal
	Code    string
}

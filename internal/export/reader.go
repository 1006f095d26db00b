package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Rana718/seedcart/internal/model"
	"github.com/Rana718/seedcart/internal/types"
	"github.com/shopspring/decimal"
)

// ReadCSV reconstructs a dataset from a directory written by WriteCSV.
func ReadCSV(dir string) (*model.Dataset, error) {
	ds := &model.Dataset{}

	readers := []struct {
		table   string
		columns []model.Column
		parse   func(r *row)
	}{
		{model.TableCustomers, model.CustomerColumns, func(r *row) {
			ds.Customers = append(ds.Customers, model.Customer{
				ID: r.integer(0), FirstName: r.text(1), LastName: r.text(2), Gender: r.text(3), Email: r.text(4),
				Phone: r.text(5), Address: r.text(6), City: r.text(7), State: r.text(8), Country: r.text(9),
				DateRegistered: r.date(10),
			})
		}},
		{model.TableCategories, model.CategoryColumns, func(r *row) {
			ds.Categories = append(ds.Categories, model.Category{ID: r.integer(0), Name: r.text(1)})
		}},
		{model.TableSuppliers, model.SupplierColumns, func(r *row) {
			ds.Suppliers = append(ds.Suppliers, model.Supplier{
				ID: r.integer(0), Name: r.text(1), ContactName: r.text(2), Phone: r.text(3), Email: r.text(4), Address: r.text(5),
			})
		}},
		{model.TableProducts, model.ProductColumns, func(r *row) {
			ds.Products = append(ds.Products, model.Product{
				ID: r.integer(0), Name: r.text(1), CategoryID: r.integer(2), SupplierID: r.integer(3),
				Price: r.money(4), Description: r.text(5), DateAdded: r.date(6),
			})
		}},
		{model.TableInventory, model.InventoryColumns, func(r *row) {
			ds.Inventory = append(ds.Inventory, model.Inventory{
				ID: r.integer(0), ProductID: r.integer(1), QuantityInStock: r.integer(2), ReorderLevel: r.integer(3),
			})
		}},
		{model.TableOrders, model.OrderColumns, func(r *row) {
			ds.Orders = append(ds.Orders, model.Order{
				ID: r.integer(0), CustomerID: r.integer(1), ProductID: r.integer(2), Quantity: r.integer(3),
				TotalAmount: r.money(4), OrderDate: r.date(5), Status: r.status(6),
			})
		}},
		{model.TablePayments, model.PaymentColumns, func(r *row) {
			ds.Payments = append(ds.Payments, model.Payment{
				ID: r.integer(0), OrderID: r.integer(1), Method: r.text(2), Amount: r.money(3), PaymentDate: r.date(4),
			})
		}},
		{model.TableShipments, model.ShipmentColumns, func(r *row) {
			ds.Shipments = append(ds.Shipments, model.Shipment{
				ID: r.integer(0), OrderID: r.integer(1), ShipmentDate: r.date(2), Carrier: r.text(3), TrackingNumber: r.text(4),
			})
		}},
		{model.TableReviews, model.ReviewColumns, func(r *row) {
			ds.Reviews = append(ds.Reviews, model.Review{
				ID: r.integer(0), ProductID: r.integer(1), CustomerID: r.integer(2), Rating: r.integer(3),
				Comment: r.text(4), ReviewDate: r.date(5),
			})
		}},
		{model.TableDiscounts, model.DiscountColumns, func(r *row) {
			ds.Discounts = append(ds.Discounts, model.Discount{
				ID: r.integer(0), OrderID: r.integer(1), Amount: r.money(2), Code: r.text(3),
			})
		}},
	}

	for _, rd := range readers {
		if err := readCSVTable(filepath.Join(dir, rd.table+".csv"), rd.table, rd.columns, rd.parse); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func readCSVTable(path, table string, columns []model.Column, parse func(r *row)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", table, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(columns)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", table, err)
	}
	for i, col := range columns {
		if header[i] != col.Name {
			return fmt.Errorf("%s: column %d is %q, expected %q", table, i+1, header[i], col.Name)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read %s: %w", table, err)
		}
		line++

		r := &row{fields: record}
		parse(r)
		if r.err != nil {
			return fmt.Errorf("%s line %d: %w", table, line, r.err)
		}
	}
}

// row decodes typed fields from a CSV record, keeping the first error.
type row struct {
	fields []string
	err    error
}

func (r *row) text(i int) string {
	return r.fields[i]
}

func (r *row) integer(i int) int {
	v, err := strconv.Atoi(r.fields[i])
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return v
}

func (r *row) money(i int) decimal.Decimal {
	v, err := decimal.NewFromString(r.fields[i])
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return v
}

func (r *row) date(i int) time.Time {
	v, err := time.Parse(time.DateOnly, r.fields[i])
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return v
}

func (r *row) status(i int) model.Status {
	v, err := model.ParseStatus(r.fields[i])
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return v
}

// ReadManifest loads the manifest written next to an export.
func ReadManifest(dir string) (*types.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m types.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

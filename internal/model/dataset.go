package model

// Table names, also used as output file names.
const (
	TableCustomers  = "customers"
	TableCategories = "categories"
	TableSuppliers  = "suppliers"
	TableProducts   = "products"
	TableOrders     = "orders"
	TablePayments   = "payments"
	TableShipments  = "shipments"
	TableReviews    = "reviews"
	TableInventory  = "inventory"
	TableDiscounts  = "discounts"
)

type ColumnType int

const (
	Integer ColumnType = iota
	Text
	Money
	Date
)

type Column struct {
	Name string
	Type ColumnType
	// References names the table this column is a foreign key into, if any.
	References string
}

// Table is the tabular view of one entity collection. The first column is the primary key.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Dependencies returns the distinct tables referenced by foreign key columns.
func (t Table) Dependencies() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, c := range t.Columns {
		if c.References == "" || c.References == t.Name || seen[c.References] {
			continue
		}
		seen[c.References] = true
		deps = append(deps, c.References)
	}
	return deps
}

// Dataset holds every generated entity collection in memory.
type Dataset struct {
	Customers  []Customer
	Categories []Category
	Suppliers  []Supplier
	Products   []Product
	Orders     []Order
	Payments   []Payment
	Shipments  []Shipment
	Reviews    []Review
	Inventory  []Inventory
	Discounts  []Discount
}

var (
	CustomerColumns = []Column{
		{Name: "CustomerID", Type: Integer},
		{Name: "FirstName", Type: Text},
		{Name: "LastName", Type: Text},
		{Name: "Gender", Type: Text},
		{Name: "Email", Type: Text},
		{Name: "Phone", Type: Text},
		{Name: "Address", Type: Text},
		{Name: "City", Type: Text},
		{Name: "State", Type: Text},
		{Name: "Country", Type: Text},
		{Name: "DateRegistered", Type: Date},
	}
	CategoryColumns = []Column{
		{Name: "CategoryID", Type: Integer},
		{Name: "CategoryName", Type: Text},
	}
	SupplierColumns = []Column{
		{Name: "SupplierID", Type: Integer},
		{Name: "SupplierName", Type: Text},
		{Name: "ContactName", Type: Text},
		{Name: "Phone", Type: Text},
		{Name: "Email", Type: Text},
		{Name: "Address", Type: Text},
	}
	ProductColumns = []Column{
		{Name: "ProductID", Type: Integer},
		{Name: "ProductName", Type: Text},
		{Name: "CategoryID", Type: Integer, References: TableCategories},
		{Name: "SupplierID", Type: Integer, References: TableSuppliers},
		{Name: "Price", Type: Money},
		{Name: "Description", Type: Text},
		{Name: "DateAdded", Type: Date},
	}
	OrderColumns = []Column{
		{Name: "OrderID", Type: Integer},
		{Name: "CustomerID", Type: Integer, References: TableCustomers},
		{Name: "ProductID", Type: Integer, References: TableProducts},
		{Name: "Quantity", Type: Integer},
		{Name: "TotalAmount", Type: Money},
		{Name: "OrderDate", Type: Date},
		{Name: "Status", Type: Text},
	}
	PaymentColumns = []Column{
		{Name: "PaymentID", Type: Integer},
		{Name: "OrderID", Type: Integer, References: TableOrders},
		{Name: "PaymentMethod", Type: Text},
		{Name: "Amount", Type: Money},
		{Name: "PaymentDate", Type: Date},
	}
	ShipmentColumns = []Column{
		{Name: "ShipmentID", Type: Integer},
		{Name: "OrderID", Type: Integer, References: TableOrders},
		{Name: "ShipmentDate", Type: Date},
		{Name: "Carrier", Type: Text},
		{Name: "TrackingNumber", Type: Text},
	}
	ReviewColumns = []Column{
		{Name: "ReviewID", Type: Integer},
		{Name: "ProductID", Type: Integer, References: TableProducts},
		{Name: "CustomerID", Type: Integer, References: TableCustomers},
		{Name: "Rating", Type: Integer},
		{Name: "Comment", Type: Text},
		{Name: "ReviewDate", Type: Date},
	}
	InventoryColumns = []Column{
		{Name: "InventoryID", Type: Integer},
		{Name: "ProductID", Type: Integer, References: TableProducts},
		{Name: "QuantityInStock", Type: Integer},
		{Name: "ReorderLevel", Type: Integer},
	}
	DiscountColumns = []Column{
		{Name: "DiscountID", Type: Integer},
		{Name: "OrderID", Type: Integer, References: TableOrders},
		{Name: "DiscountAmount", Type: Money},
		{Name: "DiscountCode", Type: Text},
	}
)

// Tables returns the tabular view of every collection in generation order.
func (d *Dataset) Tables() []Table {
	return []Table{
		d.customersTable(),
		d.categoriesTable(),
		d.suppliersTable(),
		d.productsTable(),
		d.inventoryTable(),
		d.ordersTable(),
		d.paymentsTable(),
		d.shipmentsTable(),
		d.reviewsTable(),
		d.discountsTable(),
	}
}

// Counts returns the number of records per table name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		TableCustomers:  len(d.Customers),
		TableCategories: len(d.Categories),
		TableSuppliers:  len(d.Suppliers),
		TableProducts:   len(d.Products),
		TableOrders:     len(d.Orders),
		TablePayments:   len(d.Payments),
		TableShipments:  len(d.Shipments),
		TableReviews:    len(d.Reviews),
		TableInventory:  len(d.Inventory),
		TableDiscounts:  len(d.Discounts),
	}
}

func (d *Dataset) customersTable() Table {
	rows := make([][]any, len(d.Customers))
	for i, c := range d.Customers {
		rows[i] = []any{c.ID, c.FirstName, c.LastName, c.Gender, c.Email, c.Phone,
			c.Address, c.City, c.State, c.Country, c.DateRegistered}
	}
	return Table{Name: TableCustomers, Columns: CustomerColumns, Rows: rows}
}

func (d *Dataset) categoriesTable() Table {
	rows := make([][]any, len(d.Categories))
	for i, c := range d.Categories {
		rows[i] = []any{c.ID, c.Name}
	}
	return Table{Name: TableCategories, Columns: CategoryColumns, Rows: rows}
}

func (d *Dataset) suppliersTable() Table {
	rows := make([][]any, len(d.Suppliers))
	for i, s := range d.Suppliers {
		rows[i] = []any{s.ID, s.Name, s.ContactName, s.Phone, s.Email, s.Address}
	}
	return Table{Name: TableSuppliers, Columns: SupplierColumns, Rows: rows}
}

func (d *Dataset) productsTable() Table {
	rows := make([][]any, len(d.Products))
	for i, p := range d.Products {
		rows[i] = []any{p.ID, p.Name, p.CategoryID, p.SupplierID, p.Price, p.Description, p.DateAdded}
	}
	return Table{Name: TableProducts, Columns: ProductColumns, Rows: rows}
}

func (d *Dataset) ordersTable() Table {
	rows := make([][]any, len(d.Orders))
	for i, o := range d.Orders {
		rows[i] = []any{o.ID, o.CustomerID, o.ProductID, o.Quantity, o.TotalAmount, o.OrderDate, string(o.Status)}
	}
	return Table{Name: TableOrders, Columns: OrderColumns, Rows: rows}
}

func (d *Dataset) paymentsTable() Table {
	rows := make([][]any, len(d.Payments))
	for i, p := range d.Payments {
		rows[i] = []any{p.ID, p.OrderID, p.Method, p.Amount, p.PaymentDate}
	}
	return Table{Name: TablePayments, Columns: PaymentColumns, Rows: rows}
}

func (d *Dataset) shipmentsTable() Table {
	rows := make([][]any, len(d.Shipments))
	for i, s := range d.Shipments {
		rows[i] = []any{s.ID, s.OrderID, s.ShipmentDate, s.Carrier, s.TrackingNumber}
	}
	return Table{Name: TableShipments, Columns: ShipmentColumns, Rows: rows}
}

func (d *Dataset) reviewsTable() Table {
	rows := make([][]any, len(d.Reviews))
	for i, r := range d.Reviews {
		rows[i] = []any{r.ID, r.ProductID, r.CustomerID, r.Rating, r.Comment, r.ReviewDate}
	}
	return Table{Name: TableReviews, Columns: ReviewColumns, Rows: rows}
}

func (d *Dataset) inventoryTable() Table {
	rows := make([][]any, len(d.Inventory))
	for i, inv := range d.Inventory {
		rows[i] = []any{inv.ID, inv.ProductID, inv.QuantityInStock, inv.ReorderLevel}
	}
	return Table{Name: TableInventory, Columns: InventoryColumns, Rows: rows}
}

func (d *Dataset) discountsTable() Table {
	rows := make([][]any, len(d.Discounts))
	for i, disc := range d.Discounts {
		rows[i] = []any{disc.ID, disc.OrderID, disc.Amount, disc.Code}
	}
	return Table{Name: TableDiscounts, Columns: DiscountColumns, Rows: rows}
}

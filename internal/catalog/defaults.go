package catalog

// Default returns the built-in ten-category catalog.
func Default() []Category {
	return []Category{
		{ID: 1, Name: "Electronics", Price: PriceRange{Min: 25, Max: 1000},
			Items: []string{"Wireless Earbuds", "Bluetooth Speaker", "Smartwatch", "USB-C Charger", "Mechanical Keyboard", "4K Monitor", "Action Camera", "Noise Cancelling Headphones"}},
		{ID: 2, Name: "Clothing", Price: PriceRange{Min: 10, Max: 150},
			Items: []string{"Cotton T-Shirt", "Denim Jacket", "Running Shorts", "Wool Sweater", "Rain Coat", "Chino Pants", "Hooded Sweatshirt"}},
		{ID: 3, Name: "Books", Price: PriceRange{Min: 10, Max: 60},
			Items: []string{"Mystery Novel", "Cookbook", "Travel Guide", "Science Fiction Anthology", "Biography", "Poetry Collection"}},
		{ID: 4, Name: "Home & Kitchen", Price: PriceRange{Min: 12, Max: 400},
			Items: []string{"Chef Knife", "Cast Iron Skillet", "Coffee Grinder", "Blender", "Bath Towel Set", "Table Lamp", "Storage Baskets"}},
		{ID: 5, Name: "Sports", Price: PriceRange{Min: 10, Max: 500},
			Items: []string{"Yoga Mat", "Dumbbell Set", "Tennis Racket", "Cycling Helmet", "Football", "Hiking Backpack"}},
		{ID: 6, Name: "Beauty", Price: PriceRange{Min: 10, Max: 120},
			Items: []string{"Face Serum", "Lipstick", "Hair Dryer", "Perfume", "Moisturizer", "Nail Polish Set"}},
		{ID: 7, Name: "Toys", Price: PriceRange{Min: 10, Max: 200},
			Items: []string{"Building Blocks", "Puzzle", "Remote Control Car", "Plush Bear", "Board Game", "Doll House"}},
		{ID: 8, Name: "Grocery", Price: PriceRange{Min: 10, Max: 80},
			Items: []string{"Olive Oil", "Green Tea", "Dark Chocolate", "Coffee Beans", "Honey", "Pasta Pack"}},
		{ID: 9, Name: "Automotive", Price: PriceRange{Min: 15, Max: 600},
			Items: []string{"Car Vacuum", "Dash Cam", "Jump Starter", "Seat Covers", "Tire Inflator", "Wiper Blades"}},
		{ID: 10, Name: "Health", Price: PriceRange{Min: 10, Max: 250},
			Items: []string{"Vitamin D Supplement", "Digital Thermometer", "Blood Pressure Monitor", "First Aid Kit", "Protein Powder", "Massage Gun"}},
	}
}

// Package catalog holds the fixed default packing item set. New lists start
// from this catalog; items in it are never custom and therefore never
// removable, only uncheckable.
package catalog

import "github.com/hmdeck/cruise-packing/internal/domain"

// defaultItems is the catalog grouped by category, in the order the client
// renders its sections. Item IDs are stable — saved lists reference them.
var defaultItems = map[string][]domain.PackingItem{
	domain.CategoryClothing: {
		{ID: "suits", Name: "Suits/Formal Dresses", Category: domain.CategoryClothing, Subcategory: "formal", Quantity: 1},
		{ID: "dress-shirts", Name: "Dress Shirts/Blouses", Category: domain.CategoryClothing, Subcategory: "formal", Quantity: 2},
		{ID: "dress-shoes", Name: "Dress Shoes", Category: domain.CategoryClothing, Subcategory: "formal", Quantity: 1},
		{ID: "ties", Name: "Ties/Accessories", Category: domain.CategoryClothing, Subcategory: "formal", Quantity: 2},
		{ID: "t-shirts", Name: "T-shirts/Casual Tops", Category: domain.CategoryClothing, Subcategory: "casual", Checked: true, Quantity: 5},
		{ID: "shorts-pants", Name: "Shorts/Pants", Category: domain.CategoryClothing, Subcategory: "casual", Checked: true, Quantity: 4},
		{ID: "casual-shoes", Name: "Casual Shoes/Sneakers", Category: domain.CategoryClothing, Subcategory: "casual", Checked: true, Quantity: 2},
		{ID: "light-jacket", Name: "Light Jacket/Sweater", Category: domain.CategoryClothing, Subcategory: "casual", Checked: true, Quantity: 1},
		{ID: "swimsuits", Name: "Swimsuits/Trunks", Category: domain.CategoryClothing, Subcategory: "swimwear", Checked: true, Quantity: 3},
		{ID: "cover-ups", Name: "Cover-ups/Sarongs", Category: domain.CategoryClothing, Subcategory: "swimwear", Checked: true, Quantity: 2},
		{ID: "flip-flops", Name: "Flip-flops/Sandals", Category: domain.CategoryClothing, Subcategory: "swimwear", Checked: true, Quantity: 2},
	},
	domain.CategoryToiletries: {
		{ID: "toothbrush", Name: "Toothbrush & Toothpaste", Category: domain.CategoryToiletries, Subcategory: "basic", Checked: true, Quantity: 1},
		{ID: "shampoo", Name: "Shampoo & Conditioner", Category: domain.CategoryToiletries, Subcategory: "basic", Checked: true, Quantity: 1},
		{ID: "body-wash", Name: "Body Wash", Category: domain.CategoryToiletries, Subcategory: "basic", Checked: true, Quantity: 1},
		{ID: "deodorant", Name: "Deodorant", Category: domain.CategoryToiletries, Subcategory: "basic", Checked: true, Quantity: 1},
		{ID: "razor", Name: "Razor & Shaving Cream", Category: domain.CategoryToiletries, Subcategory: "basic", Checked: true, Quantity: 1},
		{ID: "medications", Name: "Prescription Medications", Category: domain.CategoryToiletries, Subcategory: "health", Checked: true, Quantity: 1},
		{ID: "sunscreen", Name: "Sunscreen (SPF 30+)", Category: domain.CategoryToiletries, Subcategory: "health", Checked: true, Quantity: 2},
		{ID: "motion-sickness", Name: "Motion Sickness Pills", Category: domain.CategoryToiletries, Subcategory: "health", Quantity: 1},
		{ID: "first-aid", Name: "Basic First Aid Kit", Category: domain.CategoryToiletries, Subcategory: "health", Quantity: 1},
		{ID: "contact-solution", Name: "Contact Solution & Cases", Category: domain.CategoryToiletries, Subcategory: "health", Quantity: 1},
	},
	domain.CategoryElectronics: {
		{ID: "phone-charger", Name: "Phone & Charger", Category: domain.CategoryElectronics, Checked: true, Quantity: 1},
		{ID: "battery-pack", Name: "Portable Battery Pack", Category: domain.CategoryElectronics, Checked: true, Quantity: 1},
		{ID: "camera", Name: "Camera", Category: domain.CategoryElectronics, Quantity: 1},
		{ID: "tablet", Name: "Tablet/E-reader", Category: domain.CategoryElectronics, Quantity: 1},
		{ID: "headphones", Name: "Headphones", Category: domain.CategoryElectronics, Quantity: 1},
		{ID: "adapters", Name: "Adapters/Converters", Category: domain.CategoryElectronics, Quantity: 1},
	},
	domain.CategoryDocuments: {
		{ID: "passport", Name: "Passport (Valid 6+ months)", Category: domain.CategoryDocuments, Checked: true, Quantity: 1},
		{ID: "cruise-tickets", Name: "Cruise Tickets/Confirmation", Category: domain.CategoryDocuments, Checked: true, Quantity: 1},
		{ID: "travel-insurance", Name: "Travel Insurance", Category: domain.CategoryDocuments, Checked: true, Quantity: 1},
		{ID: "credit-cards", Name: "Credit Cards & Cash", Category: domain.CategoryDocuments, Checked: true, Quantity: 1},
		{ID: "drivers-license", Name: "Driver's License/ID", Category: domain.CategoryDocuments, Quantity: 1},
		{ID: "emergency-contacts", Name: "Emergency Contact Info", Category: domain.CategoryDocuments, Quantity: 1},
	},
	domain.CategoryAdditional: {
		{ID: "sunglasses", Name: "Sunglasses", Category: domain.CategoryAdditional, Checked: true, Quantity: 2},
		{ID: "beach-towels", Name: "Beach/Pool Towels", Category: domain.CategoryAdditional, Checked: true, Quantity: 2},
		{ID: "snorkel-gear", Name: "Snorkel Gear", Category: domain.CategoryAdditional, Quantity: 1},
		{ID: "books", Name: "Books/Magazines", Category: domain.CategoryAdditional, Quantity: 3},
		{ID: "day-pack", Name: "Day Pack/Bag", Category: domain.CategoryAdditional, Quantity: 1},
		{ID: "water-bottle", Name: "Reusable Water Bottle", Category: domain.CategoryAdditional, Quantity: 1},
	},
}

// DefaultItems returns the catalog grouped by category. The result is a
// fresh copy — callers may mutate it freely (the client does, when building
// a new list from the defaults).
func DefaultItems() map[string][]domain.PackingItem {
	out := make(map[string][]domain.PackingItem, len(defaultItems))
	for cat, items := range defaultItems {
		cp := make([]domain.PackingItem, len(items))
		copy(cp, items)
		out[cat] = cp
	}
	return out
}

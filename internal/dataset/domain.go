package dataset

import "time"

// Transaction represents one synthetic purchase record in the dataset.
type Transaction struct {
	TransactionID int64     `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
	CustomerID    int64     `json:"customer_id"`
	Category      string    `json:"category"`
	ProductID     int64     `json:"product_id"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	Discount      float64   `json:"discount"`
	Subtotal      float64   `json:"subtotal"`
	TaxRate       float64   `json:"tax_rate"`
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Region        string    `json:"region"`
	City          string    `json:"city"`
	Status        string    `json:"status"`
	IsMember      bool      `json:"is_member"`
	Rating        *int      `json:"rating"` // nil when the customer left no rating
}

// Date returns the calendar day of the transaction, formatted YYYY-MM-DD.
func (t *Transaction) Date() string {
	return t.Timestamp.Format("2006-01-02")
}

// Columns is the CSV header, in write order.
var Columns = []string{
	"transaction_id",
	"timestamp",
	"customer_id",
	"category",
	"product_id",
	"unit_price",
	"quantity",
	"discount",
	"subtotal",
	"tax_rate",
	"tax",
	"total",
	"payment_method",
	"region",
	"city",
	"status",
	"is_member",
	"rating",
}

// Fixed vocabularies for the categorical columns.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Toys & Games",
	"Health & Beauty",
	"Automotive",
	"Grocery",
	"Pet Supplies",
	"Office Supplies",
	"Music & Movies",
	"Jewelry",
	"Baby Products",
	"Tools & Hardware",
}

var PaymentMethods = []string{
	"Credit Card",
	"Debit Card",
	"PayPal",
	"Apple Pay",
	"Google Pay",
	"Gift Card",
	"Wire Transfer",
}

var Regions = []string{
	"Northeast",
	"Southeast",
	"Midwest",
	"Southwest",
	"West Coast",
	"Northwest",
	"Mid-Atlantic",
	"Great Plains",
}

var Statuses = []string{
	"Completed",
	"Pending",
	"Shipped",
	"Cancelled",
	"Returned",
	"Refunded",
}

var Cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"Indianapolis", "San Francisco", "Seattle", "Denver", "Nashville",
	"Portland", "Las Vegas", "Memphis", "Louisville", "Baltimore",
	"Milwaukee", "Albuquerque", "Tucson", "Fresno", "Sacramento",
}

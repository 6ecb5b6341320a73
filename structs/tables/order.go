package tables

// Order is a single client/product/date purchase line.
//
// Quantity and price are stored as text: price must be able to carry the
// "N/A" sentinel (and whatever currency formatting users type in), and
// quantity follows it for the same edit-in-place reasons. Parsing into
// working types happens at the model boundary, never in storage.
//
// The surrogate id exists only so the relational engine has a primary key;
// addressing is always by the (client, product, date) triple.
type Order struct {
	tableName struct{} `bun:"table:orders,alias:o"`

	Id int64 `bun:"id,pk,autoincrement" json:"id,omitempty"`

	Client   string `bun:"client,notnull" json:"client" validate:"required"`
	Product  string `bun:"product,notnull" json:"product" validate:"required"`
	Quantity string `bun:"quantity" json:"quantity"`
	Price    string `bun:"price" json:"price"`
	Date     string `bun:"date,notnull" json:"date" validate:"required"` // YYYY-MM-DD business date
}

package types

// Point is a registered collection point. Created atomically with its
// category associations; immutable afterwards.
type Point struct {
	ID        int64   `db:"id" json:"id"`
	Image     string  `db:"image" json:"image"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Whatsapp  string  `db:"whatsapp" json:"whatsapp"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	City      string  `db:"city" json:"city"`
	UF        string  `db:"uf" json:"uf"`
}

// PointCategory links a point to one accepted category. Rows are written
// in the same transaction as their point and never mutated afterwards.
type PointCategory struct {
	PointID    int64 `db:"point_id"`
	CategoryID int   `db:"category_id"`
}

// PointView is the caller-facing shape with the image resolved to a
// public URL alongside the raw stored filename.
type PointView struct {
	Point
	ImageURL string `json:"image_url"`
}

// PointDetail pairs a point with the titles of its accepted categories.
type PointDetail struct {
	Point      PointView       `json:"point"`
	Categories []CategoryTitle `json:"categories"`
}

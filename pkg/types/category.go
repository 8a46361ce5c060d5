package types

// Category is a material type a collection point can accept. Reference
// data with fixed ids, seeded once and read-only at runtime.
type Category struct {
	ID    int    `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Image string `db:"image" json:"-"`
}

// CategoryView is the caller-facing shape with the image resolved to a
// public URL.
type CategoryView struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// CategoryTitle carries just the display name, used when listing the
// categories attached to a single point.
type CategoryTitle struct {
	Title string `json:"title"`
}

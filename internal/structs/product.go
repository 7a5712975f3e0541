package structs

type ProductSpec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TastingNote struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Product struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	SubTitle     string        `json:"subTitle,omitempty"`
	Category     string        `json:"category"`
	Price        int64         `json:"price"`
	Image        string        `json:"image"`
	Description  string        `json:"description"`
	Rating       float64       `json:"rating,omitempty"`
	Reviews      int           `json:"reviews,omitempty"`
	IsNew        bool          `json:"isNew,omitempty"`
	Specs        []ProductSpec `json:"specs,omitempty"`
	TastingNotes []TastingNote `json:"tastingNotes,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type GetListProductRequest struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	MaxPrice int64  `json:"maxPrice"`
	Sort     string `json:"sort"`
	Offset   int64  `json:"offset"`
	Limit    int64  `json:"limit"`
}

type GetListProductResponse struct {
	Count    int64     `json:"count"`
	Products []Product `json:"products"`
}

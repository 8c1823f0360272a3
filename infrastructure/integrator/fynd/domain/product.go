package fynddomain

type Named struct {
	Name string `json:"name"`
}

type Size struct {
	Size             string  `json:"size"`
	Price            float64 `json:"price"`
	PriceEffective   float64 `json:"price_effective"`
	Currency         string  `json:"currency"`
	SellerIdentifier string  `json:"seller_identifier"`
}

// ProductRequest is the body of the platform catalog create-product call.
type ProductRequest struct {
	Name        string   `json:"name"`
	Brand       Named    `json:"brand"`
	Category    Named    `json:"category"`
	Departments []string `json:"departments"`
	ItemCode    string   `json:"item_code"`
	Description string   `json:"description"`
	Sizes       []Size   `json:"sizes"`
	IsActive    bool     `json:"is_active"`
	Slug        string   `json:"slug"`
}

type ProductResponse struct {
	UID     int64  `json:"uid"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Product struct {
	UID      int64  `json:"uid"`
	Name     string `json:"name"`
	ItemCode string `json:"item_code"`
	Slug     string `json:"slug"`
	Brand    Named  `json:"brand"`
	Category Named  `json:"category"`
	IsActive bool   `json:"is_active"`
}

type Page struct {
	Current   int  `json:"current"`
	Size      int  `json:"size"`
	HasNext   bool `json:"has_next"`
	ItemTotal int  `json:"item_total"`
}

type ProductListResponse struct {
	Items []Product `json:"items"`
	Page  Page      `json:"page"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

package converter

type ProductInfoRedisModel struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
}

// ProductSnapshotRedisModel — снапшот продукта внутри позиции корзины.
type ProductSnapshotRedisModel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageKey string `json:"image_key"`
}

// CartItemRedisModel — позиция снапшота корзины в Redis.
type CartItemRedisModel struct {
	Product  ProductSnapshotRedisModel `json:"product"`
	Quantity int                       `json:"quantity"`
}

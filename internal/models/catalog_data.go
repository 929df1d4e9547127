package models

// BundledCatalog 返回内置静态商品目录
//
// 既是空库时的种子数据，也是供给层在缓存与网络全部失败后的兜底目录，
// 保证前台永远有商品可渲染。返回新切片，调用方可自由修改。
func BundledCatalog() []Product {
	items := []Product{
		{ID: 1, Name: "Classic Jeans", Price: "$79.99", Description: "Timeless style with a perfect fit.", Featured: true},
		{ID: 2, Name: "Skinny Jeans", Price: "$89.99", Description: "Modern slim fit for a sleek look.", Featured: true},
		{ID: 3, Name: "Relaxed Fit", Price: "$69.99", Description: "Comfortable and casual for everyday wear."},
		{ID: 4, Name: "Bootcut Jeans", Price: "$74.99", Description: "Classic bootcut style for versatile styling.", Featured: true},
		{ID: 5, Name: "Slim Straight Jeans", Price: "$84.99", Description: "Perfect balance between slim and straight fit for all-day comfort."},
		{ID: 6, Name: "Wide Leg Jeans", Price: "$94.99", Description: "Trendy wide leg design for a bold fashion statement.", Featured: true},
		{ID: 7, Name: "Distressed Denim", Price: "$99.99", Description: "Edgy distressed style with authentic vintage look."},
		{ID: 8, Name: "Black Jeans", Price: "$79.99", Description: "Versatile black denim perfect for any occasion."},
		{ID: 9, Name: "Raw Denim", Price: "$119.99", Description: "Premium raw denim that ages beautifully with wear.", Featured: true},
		{ID: 10, Name: "Carpenter Jeans", Price: "$89.99", Description: "Functional design with utility pockets and durable construction."},
		{ID: 11, Name: "High-Rise Jeans", Price: "$92.99", Description: "Flattering high-rise cut with comfortable stretch fabric."},
		{ID: 12, Name: "Tapered Fit", Price: "$87.99", Description: "Modern tapered leg for a contemporary silhouette."},
		{ID: 13, Name: "Vintage Wash Jeans", Price: "$109.99", Description: "Authentic vintage wash with unique fading patterns.", Featured: true},
		{ID: 14, Name: "Jogger Jeans", Price: "$94.99", Description: "Comfortable jogger style with elastic cuffs for a modern athleisure look."},
		{ID: 15, Name: "Cropped Jeans", Price: "$84.99", Description: "Trendy cropped length perfect for showing off your favorite sneakers."},
		{ID: 16, Name: "Ripped Jeans", Price: "$99.99", Description: "Stylish distressed details with strategic rips and tears."},
		{ID: 17, Name: "Dark Wash Jeans", Price: "$89.99", Description: "Deep indigo color that works for both casual and formal occasions."},
		{ID: 18, Name: "Light Wash Jeans", Price: "$79.99", Description: "Bright, summery light wash perfect for warm weather."},
		{ID: 19, Name: "Jeggings", Price: "$69.99", Description: "Ultimate comfort with stretchy denim that looks like jeans."},
		{ID: 20, Name: "Boyfriend Jeans", Price: "$94.99", Description: "Relaxed, slouchy fit inspired by menswear styles."},
		{ID: 21, Name: "Mom Jeans", Price: "$89.99", Description: "High-waisted vintage style with a comfortable relaxed fit."},
		{ID: 22, Name: "Flare Jeans", Price: "$99.99", Description: "Retro-inspired flare leg that widens from the knee down."},
		{ID: 23, Name: "Selvedge Denim", Price: "$149.99", Description: "Premium Japanese selvedge denim with signature red line detail.", Featured: true},
		{ID: 24, Name: "Stretch Jeans", Price: "$74.99", Description: "Maximum comfort with high-stretch fabric for all-day wear."},
	}
	for i := range items {
		items[i].SortOrder = i + 1
	}
	return items
}

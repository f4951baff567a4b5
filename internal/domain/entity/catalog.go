package entity

import "time"

// Category kategoriya va unga tegishli mahsulotlar (fayldagi tartibda)
type Category struct {
	Name     string
	Products []string
}

// Catalog kategoriyalar katalogi. Ishga tushganda bir marta yuklanadi va o'zgarmaydi.
type Catalog struct {
	Categories []Category
	LoadedAt   time.Time
	Source     string // katalog fayl nomi
}

// CatalogPick tasodifiy tanlangan mahsulot va uning kategoriyasi
type CatalogPick struct {
	Category string
	Product  string
}

// ProductCount katalogdagi jami (kategoriya, mahsulot) juftliklari soni
func (c Catalog) ProductCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Products)
	}
	return n
}

package feed

// Prices lists ticket prices per audience, in soles.
type Prices struct {
	General float64 `json:"general"`
	Kids    float64 `json:"niños"`
	Seniors float64 `json:"tercera_edad"`
	VIP     float64 `json:"VIP"`
}

// Movie is a single entry of the listings feed.
type Movie struct {
	ID             int      `json:"id"`
	Title          string   `json:"titulo"`
	Image          string   `json:"imagen"`
	Genres         []string `json:"genero"`
	Synopsis       string   `json:"sinopsis"`
	Rating         float64  `json:"rating"`
	Duration       int      `json:"duracion"` // minutes
	Classification string   `json:"clasificacion"`
	Showtimes      []string `json:"horarios"`
	Prices         Prices   `json:"precios"`
	Promotions     []string `json:"promociones,omitempty"`
}

// Promotion is a cinema-wide offer.
type Promotion struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// Combo is a concession bundle.
type Combo struct {
	Name     string  `json:"nombre"`
	Contents string  `json:"contenido"`
	Price    float64 `json:"precio"`
}

// Catalog is the decoded feed document.
type Catalog struct {
	Cinema     string      `json:"cine"`
	Location   string      `json:"ubicacion"`
	Movies     []Movie     `json:"peliculas"`
	Promotions []Promotion `json:"promociones_generales"`
	Combos     []Combo     `json:"combos"`
}

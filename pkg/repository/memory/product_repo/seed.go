package productrepo

import "webiecellar/internal/structs"

// catalogSeed is the static storefront catalog. Images are served from the
// CDN referenced by the web client.
var catalogSeed = []structs.Product{
	{
		ID:          1,
		Name:        "The Macallan 12 Year Old",
		SubTitle:    "Double Cask Single Malt",
		Category:    "whiskey",
		Price:       2850000,
		Image:       "https://cdn.webiecellar.vn/img/products/macallan-12-double-cask.jpg",
		Description: "Matured in a combination of American and European oak casks seasoned with sherry, delivering honeyed sweetness with citrus and light oak.",
		Rating:      4.8,
		Reviews:     214,
		Specs: []structs.ProductSpec{
			{Label: "ABV", Value: "40%"},
			{Label: "Volume", Value: "700ml"},
			{Label: "Region", Value: "Speyside, Scotland"},
		},
		TastingNotes: []structs.TastingNote{
			{Title: "Nose", Text: "Butterscotch, candied orange and vanilla."},
			{Title: "Palate", Text: "Honey, toffee apple and gentle oak spice."},
		},
	},
	{
		ID:          2,
		Name:        "Glenfiddich 18 Year Old",
		SubTitle:    "Small Batch Reserve",
		Category:    "whiskey",
		Price:       3950000,
		Image:       "https://cdn.webiecellar.vn/img/products/glenfiddich-18.jpg",
		Description: "Remarkably rich single malt with baked apple, robust oak and a warming depth built over eighteen patient years.",
		Rating:      4.7,
		Reviews:     168,
	},
	{
		ID:          3,
		Name:        "Hibiki Japanese Harmony",
		Category:    "whiskey",
		Price:       4500000,
		Image:       "https://cdn.webiecellar.vn/img/products/hibiki-harmony.jpg",
		Description: "A meticulous blend of malt and grain whiskies from Yamazaki, Hakushu and Chita, presented in the iconic 24-facet bottle.",
		Rating:      4.9,
		Reviews:     342,
		IsNew:       true,
	},
	{
		ID:          4,
		Name:        "Château Margaux 2015",
		SubTitle:    "Premier Grand Cru Classé",
		Category:    "red-wine",
		Price:       9800000,
		Image:       "https://cdn.webiecellar.vn/img/products/chateau-margaux-2015.jpg",
		Description: "A legendary Margaux vintage of extraordinary finesse, with layered blackcurrant, violet and cedar over silky tannins.",
		Rating:      5.0,
		Reviews:     87,
		Specs: []structs.ProductSpec{
			{Label: "Grape", Value: "Cabernet Sauvignon blend"},
			{Label: "Vintage", Value: "2015"},
			{Label: "Region", Value: "Bordeaux, France"},
		},
	},
	{
		ID:          5,
		Name:        "Penfolds Bin 389",
		SubTitle:    "Cabernet Shiraz",
		Category:    "red-wine",
		Price:       1950000,
		Image:       "https://cdn.webiecellar.vn/img/products/penfolds-bin-389.jpg",
		Description: "Often called 'Baby Grange', matured in the same barrels that previously held Grange, marrying dark fruit with mocha oak.",
		Rating:      4.6,
		Reviews:     129,
	},
	{
		ID:          6,
		Name:        "Catena Malbec",
		Category:    "red-wine",
		Price:       850000,
		Image:       "https://cdn.webiecellar.vn/img/products/catena-malbec.jpg",
		Description: "High-altitude Mendoza Malbec with ripe plum, violets and a soft, rounded finish.",
		Rating:      4.4,
		Reviews:     96,
	},
	{
		ID:          7,
		Name:        "Cloudy Bay Sauvignon Blanc",
		Category:    "white-wine",
		Price:       890000,
		Image:       "https://cdn.webiecellar.vn/img/products/cloudy-bay-sb.jpg",
		Description: "The Marlborough benchmark: vivid citrus and passionfruit with a crisp mineral backbone.",
		Rating:      4.5,
		Reviews:     201,
	},
	{
		ID:          8,
		Name:        "Chablis William Fèvre",
		SubTitle:    "Champs Royaux",
		Category:    "white-wine",
		Price:       1250000,
		Image:       "https://cdn.webiecellar.vn/img/products/chablis-william-fevre.jpg",
		Description: "Classic unoaked Chardonnay from Kimmeridgian soils, taut and saline with green apple freshness.",
		Rating:      4.3,
		Reviews:     74,
	},
	{
		ID:          9,
		Name:        "Moët & Chandon Impérial Brut",
		Category:    "champagne",
		Price:       1450000,
		Image:       "https://cdn.webiecellar.vn/img/products/moet-imperial.jpg",
		Description: "The house style since 1869: bright fruitiness, a seductive palate and an elegant maturity.",
		Rating:      4.5,
		Reviews:     312,
	},
	{
		ID:          10,
		Name:        "Dom Pérignon Vintage 2013",
		Category:    "champagne",
		Price:       6500000,
		Image:       "https://cdn.webiecellar.vn/img/products/dom-perignon-2013.jpg",
		Description: "A vintage of tension and precision, with smoky minerality wrapped around white fruit and brioche.",
		Rating:      4.9,
		Reviews:     158,
		IsNew:       true,
		TastingNotes: []structs.TastingNote{
			{Title: "Nose", Text: "Almond, powdered cocoa, white fruit and dried flowers."},
			{Title: "Palate", Text: "Tactile, enveloping, with a saline and sappy finish."},
		},
	},
	{
		ID:          11,
		Name:        "Beluga Noble",
		Category:    "vodka",
		Price:       1150000,
		Image:       "https://cdn.webiecellar.vn/img/products/beluga-noble.jpg",
		Description: "Malt-spirit vodka rested for thirty days, unusually soft with hints of oat and honey.",
		Rating:      4.4,
		Reviews:     118,
	},
	{
		ID:          12,
		Name:        "Grey Goose",
		Category:    "vodka",
		Price:       990000,
		Image:       "https://cdn.webiecellar.vn/img/products/grey-goose.jpg",
		Description: "Distilled from Picardie winter wheat and blended with Gensac spring water for a signature smooth finish.",
		Rating:      4.3,
		Reviews:     265,
	},
	{
		ID:          13,
		Name:        "Hendrick's Gin",
		Category:    "gin",
		Price:       1050000,
		Image:       "https://cdn.webiecellar.vn/img/products/hendricks.jpg",
		Description: "Infused with rose petal and cucumber alongside eleven botanicals, unmistakably curious.",
		Rating:      4.6,
		Reviews:     189,
	},
	{
		ID:          14,
		Name:        "The Botanist Islay Dry Gin",
		Category:    "gin",
		Price:       1280000,
		Image:       "https://cdn.webiecellar.vn/img/products/the-botanist.jpg",
		Description: "Twenty-two hand-foraged Islay botanicals distilled slowly in the lomond still Ugly Betty.",
		Rating:      4.5,
		Reviews:     92,
	},
	{
		ID:          15,
		Name:        "Diplomático Reserva Exclusiva",
		Category:    "rum",
		Price:       1190000,
		Image:       "https://cdn.webiecellar.vn/img/products/diplomatico-reserva.jpg",
		Description: "Venezuelan sipping rum aged up to twelve years, generous with toffee, orange peel and dark chocolate.",
		Rating:      4.7,
		Reviews:     176,
	},
	{
		ID:          16,
		Name:        "Ron Zacapa 23",
		SubTitle:    "Sistema Solera",
		Category:    "rum",
		Price:       1650000,
		Image:       "https://cdn.webiecellar.vn/img/products/zacapa-23.jpg",
		Description: "Blended from rums aged between six and twenty-three years at 2,300m above sea level in the Guatemalan highlands.",
		Rating:      4.8,
		Reviews:     143,
	},
}

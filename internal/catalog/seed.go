package catalog

import (
	"fmt"
	"math"
	"net/url"

	"github.com/RodReBer/barraca-toto/internal/model"
)

// The seed tables below are the built-in storefront dataset. They are
// materialized once per process and never mutated; the admin overlay is
// merged on top of them.

var seedCategories = []model.Category{
	{
		ID:          "construccion",
		Name:        "Construcción",
		Description: "Todo lo que necesitas para tus proyectos de construcción. Materiales de alta calidad y herramientas profesionales.",
		Image:       "/placeholder.svg?height=240&width=360&text=Construcci%C3%B3n",
	},
	{
		ID:          "herramientas",
		Name:        "Herramientas",
		Description: "Las mejores marcas de herramientas para profesionales y aficionados. Calidad garantizada.",
		Image:       "/placeholder.svg?height=240&width=360&text=Herramientas",
	},
	{
		ID:          "jardin",
		Name:        "Jardín",
		Description: "Todo para el cuidado y mantenimiento de tus espacios verdes. Herramientas, plantas y accesorios.",
		Image:       "/placeholder.svg?height=240&width=360&text=Jard%C3%ADn",
	},
	{
		ID:          "diseno",
		Name:        "Diseño Interior",
		Description: "Vinilos, baldosas, PVC y más para renovar tu hogar con el mejor estilo.",
		Image:       "/placeholder.svg?height=240&width=360&text=Dise%C3%B1o",
	},
	{
		ID:          "electrodomesticos",
		Name:        "Electrodomésticos",
		Description: "Televisores, heladeras, aspiradoras y más para hacer tu vida más cómoda.",
		Image:       "/placeholder.svg?height=240&width=360&text=Electrodom%C3%A9sticos",
	},
	{
		ID:          "ferreteria",
		Name:        "Ferretería",
		Description: "Artículos de ferretería para todo uso. Encuentra lo que necesitas para tus proyectos.",
		Image:       "/placeholder.svg?height=240&width=360&text=Ferreter%C3%ADa",
	},
}

const seedProductsPerCategory = 12

var seedBasePrices = map[string]float64{
	"construccion":      1500,
	"herramientas":      2000,
	"jardin":            800,
	"diseno":            1200,
	"electrodomesticos": 3000,
	"ferreteria":        500,
}

var (
	seedBrands      = []string{"Stanley", "Bosch", "Tramontina", "3M", "Black & Decker"}
	seedMaterials   = []string{"Acero", "Plástico reforzado", "Aluminio", "Madera", "Cerámica"}
	seedResistances = []string{"agua", "golpes", "corrosión", "temperaturas extremas", "rayones"}
	seedIncludes    = []string{"manual de instrucciones", "kit de instalación", "accesorios", "estuche", "soporte técnico"}
	seedUses        = []string{"uso profesional", "proyectos DIY", "uso doméstico", "principiantes", "expertos"}
	seedTech        = []string{"avanzada", "patentada", "innovadora", "sustentable", "ergonómica"}
)

// SeedCategories returns a copy of the fixed category set.
func SeedCategories() []model.Category {
	out := make([]model.Category, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// SeedProducts generates the built-in product set: twelve products per
// category with rotating discount, new and featured flags. The generation is
// fully deterministic so the same ids and fields exist in every session.
func SeedProducts() []model.Product {
	products := make([]model.Product, 0, len(seedCategories)*seedProductsPerCategory)
	for _, cat := range seedCategories {
		products = append(products, seedCategoryProducts(cat, seedBasePrices[cat.ID], seedProductsPerCategory)...)
	}
	return products
}

func seedCategoryProducts(cat model.Category, basePrice float64, count int) []model.Product {
	products := make([]model.Product, 0, count)
	for index := 0; index < count; index++ {
		price := basePrice + float64(index)*basePrice*0.1

		p := model.Product{
			ID:         fmt.Sprintf("%s-%d", cat.ID, index+1),
			Name:       fmt.Sprintf("%s Premium %d", cat.Name, index+1),
			Category:   cat.Name,
			CategoryID: cat.ID,
			Description: fmt.Sprintf("Producto de %s de alta calidad. Diseñado para profesionales y aficionados "+
				"que buscan lo mejor para sus proyectos. Este producto cuenta con garantía de 1 año y soporte técnico incluido.", cat.Name),
			ShortDescription: fmt.Sprintf("Producto de %s de alta calidad para profesionales y aficionados.", cat.Name),
			Price:            price,
			Image: fmt.Sprintf("/placeholder.svg?height=500&width=500&text=%s+%d",
				url.QueryEscape(cat.Name), index+1),
			Specifications: []model.Specification{
				{Name: "Marca", Value: seedBrands[index%5]},
				{Name: "Material", Value: seedMaterials[index%5]},
				{Name: "Dimensiones", Value: fmt.Sprintf("%dcm x %dcm x %dcm", 30+index*5, 20+index*3, 10+index)},
				{Name: "Peso", Value: fmt.Sprintf("%.1fkg", 1+float64(index)*0.5)},
				{Name: "Garantía", Value: "1 año"},
			},
			Features: []string{
				fmt.Sprintf("Característica principal del producto de %s", cat.Name),
				fmt.Sprintf("Resistente a %s", seedResistances[index%5]),
				fmt.Sprintf("Incluye %s", seedIncludes[index%5]),
				fmt.Sprintf("Ideal para %s", seedUses[index%5]),
				fmt.Sprintf("Tecnología %s", seedTech[index%5]),
			},
			Stock:      index%5 != 3,
			IsNew:      index%4 == 0,
			IsFeatured: index%5 == 0,
		}

		// Every third product ships with a markdown from a 15%-higher list
		// price; NormalizeDiscount keeps the stored percentage consistent
		// with the rounded amounts.
		if index%3 == 0 {
			original := math.Round(price * 1.15)
			p.OriginalPrice = &original
			p.NormalizeDiscount()
		}

		products = append(products, p)
	}
	return products
}

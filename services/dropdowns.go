package services

// DefaultCatalog returns the Growmate product catalog used to seed the
// catalog_products collection on first start.
func DefaultCatalog() Catalog {
	return MustCatalog([]Category{
		{Name: "Insecticides", Products: []Product{
			{Name: "Growpride", Unit: "gms", PackSizes: sizes("5", "10", "25", "50", "100", "1kg")},
			{Name: "Timecarb", Unit: "mls", PackSizes: sizes("25", "50", "100", "250", "1ltr")},
			{Name: "Spirometer", Unit: "mls", PackSizes: sizes("50", "100", "250", "1ltr")},
			{Name: "Emargurd", Unit: "mls", PackSizes: sizes("25", "50", "100", "250", "1ltr")},
		}},
		{Name: "Fungicides", Products: []Product{
			{Name: "Pyraccop", Unit: "mls", PackSizes: sizes("50", "100", "250", "1ltr")},
			{Name: "Azokon", Unit: "mls", PackSizes: sizes("50", "100", "250", "1ltr")},
			{Name: "Manlaxy", Unit: "gms", PackSizes: sizes("50", "100", "250", "500", "1kg")},
		}},
		{Name: "Nutrition", Products: []Product{
			{Name: "Okinawo", Unit: "mls", PackSizes: sizes("100", "250", "500", "1ltr")},
			{Name: "Seagold", Unit: "mls", PackSizes: sizes("100", "250", "500", "1ltr")},
			{Name: "Zincbomate", Unit: "mls", PackSizes: sizes("100", "250", "500", "1ltr")},
			{Name: "Calcibora", Unit: "mls", PackSizes: sizes("100", "250", "500", "1ltr")},
			{Name: "Boroking", Unit: "mls", PackSizes: sizes("100", "250", "500", "1ltr")},
			{Name: "Growspeed_macro", Unit: "mls", PackSizes: sizes("100", "250", "500", "1ltr")},
		}},
		{Name: "Adjuvant", Products: []Product{
			{Name: "Polysil", Unit: "mls", PackSizes: sizes("25", "50", "100", "250", "1ltr")},
		}},
		{Name: "Herbicides", Products: []Product{
			{Name: "MIne_posat", Unit: "mls", PackSizes: sizes("500", "1ltr")},
			{Name: "Bentagrow", Unit: "mls", PackSizes: sizes("500", "1ltr")},
		}},
	})
}

func sizes(labels ...string) []PackSize {
	out := make([]PackSize, len(labels))
	for i, l := range labels {
		out[i] = PackSize(l)
	}
	return out
}

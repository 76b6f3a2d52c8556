package store

import "github.com/asshop/storefront/internal/domain"

// Documented fallbacks used whenever a persisted record is absent or
// unreadable. The delivery table carries one entry per wilaya of Algeria.

func defaultSettings() domain.StoreSettings {
	return domain.StoreSettings{
		StoreName:                 "AS",
		StoreDescription:          "Votre boutique en ligne de confiance",
		Currency:                  "DA",
		TaxRate:                   19,
		DefaultShippingPrice:      500,
		EnableWeightBasedShipping: true,
		EnableDiscountCodes:       true,
		EnableSizeSelection:       true,
		EnableColorSelection:      true,
	}
}

func defaultDiscountCodes() []domain.DiscountCode {
	return []domain.DiscountCode{
		{ID: "1", Code: "WELCOME10", Type: domain.DiscountTypePercentage, Value: 10, IsActive: true, MinOrderAmount: 5000},
		{ID: "2", Code: "SAVE500", Type: domain.DiscountTypeFixed, Value: 500, IsActive: true, MinOrderAmount: 2000},
		{ID: "3", Code: "NEWCLIENT", Type: domain.DiscountTypePercentage, Value: 15, IsActive: true, MinOrderAmount: 10000},
	}
}

func defaultDeliveryPrices() []domain.DeliveryPrice {
	return []domain.DeliveryPrice{
		{State: "Adrar", HomeDelivery: 1600, StopDesk: 800, WeightMultiplier: 1.2},
		{State: "Chlef", HomeDelivery: 900, StopDesk: 450, WeightMultiplier: 1.0},
		{State: "Laghouat", HomeDelivery: 1200, StopDesk: 600, WeightMultiplier: 1.1},
		{State: "Oum El Bouaghi", HomeDelivery: 900, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Batna", HomeDelivery: 850, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Béjaïa", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Biskra", HomeDelivery: 850, StopDesk: 350, WeightMultiplier: 1.1},
		{State: "Béchar", HomeDelivery: 1400, StopDesk: 800, WeightMultiplier: 1.3},
		{State: "Blida", HomeDelivery: 800, StopDesk: 350, WeightMultiplier: 0.8},
		{State: "Bouira", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 0.9},
		{State: "Tamanrasset", HomeDelivery: 1600, StopDesk: 1000, WeightMultiplier: 1.5},
		{State: "Tébessa", HomeDelivery: 800, StopDesk: 600, WeightMultiplier: 1.1},
		{State: "Tlemcen", HomeDelivery: 900, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Tiaret", HomeDelivery: 950, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Tizi Ouzou", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 0.9},
		{State: "Alger", HomeDelivery: 750, StopDesk: 350, WeightMultiplier: 0.7},
		{State: "Djelfa", HomeDelivery: 1200, StopDesk: 600, WeightMultiplier: 1.0},
		{State: "Jijel", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Sétif", HomeDelivery: 850, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Saïda", HomeDelivery: 1000, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Skikda", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Sidi Bel Abbès", HomeDelivery: 900, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Annaba", HomeDelivery: 850, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Guelma", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Constantine", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Médéa", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 0.9},
		{State: "Mostaganem", HomeDelivery: 900, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "M'Sila", HomeDelivery: 900, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Mascara", HomeDelivery: 950, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Ouargla", HomeDelivery: 1200, StopDesk: 600, WeightMultiplier: 1.2},
		{State: "Oran", HomeDelivery: 900, StopDesk: 350, WeightMultiplier: 0.9},
		{State: "El Bayadh", HomeDelivery: 1400, StopDesk: 600, WeightMultiplier: 1.1},
		{State: "Illizi", HomeDelivery: 1800, StopDesk: 1200, WeightMultiplier: 1.4},
		{State: "Bordj Bou Arreridj", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Boumerdès", HomeDelivery: 650, StopDesk: 400, WeightMultiplier: 0.8},
		{State: "El Tarf", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.1},
		{State: "Tindouf", HomeDelivery: 1600, StopDesk: 1000, WeightMultiplier: 1.4},
		{State: "Tissemsilt", HomeDelivery: 950, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "El Oued", HomeDelivery: 1000, StopDesk: 600, WeightMultiplier: 1.1},
		{State: "Khenchela", HomeDelivery: 800, StopDesk: 350, WeightMultiplier: 1.1},
		{State: "Souk Ahras", HomeDelivery: 850, StopDesk: 400, WeightMultiplier: 1.1},
		{State: "Tipaza", HomeDelivery: 850, StopDesk: 350, WeightMultiplier: 0.8},
		{State: "Mila", HomeDelivery: 800, StopDesk: 350, WeightMultiplier: 1.0},
		{State: "Aïn Defla", HomeDelivery: 900, StopDesk: 400, WeightMultiplier: 0.9},
		{State: "Naâma", HomeDelivery: 1400, StopDesk: 800, WeightMultiplier: 1.2},
		{State: "Aïn Témouchent", HomeDelivery: 950, StopDesk: 400, WeightMultiplier: 1.0},
		{State: "Ghardaïa", HomeDelivery: 1200, StopDesk: 600, WeightMultiplier: 1.1},
		{State: "Relizane", HomeDelivery: 950, StopDesk: 400, WeightMultiplier: 1.0},
	}
}

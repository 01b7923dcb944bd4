package main

import "github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"

// demoItems ítems de ejemplo para el modo STORAGE=memory.
func demoItems() []domain.Item {
	return []domain.Item{
		{SKU: "TORN-M4", EAN13: "8412345678905", Stock: 120},
		{SKU: "TUER-M4", EAN13: "8412345678912", Stock: 200},
		{SKU: "ARAN-8MM", EAN13: "8412345678929", Stock: 75},
		{SKU: "CABLE-2M", EAN13: "", Stock: 10},
	}
}

package main

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AgtechDS/menuserve/models"
	"github.com/AgtechDS/menuserve/utils"
)

// seedMenu populates an empty database with the restaurant's menu so
// a fresh install has something to sell.
func seedMenu(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("Error counting menu items: %v", err)
		return
	}
	if count > 0 {
		return
	}

	items := []models.MenuItem{
		{Name: "Bruschetta al Pomodoro", Description: "Pane tostato con pomodorini, basilico e olio extravergine", Price: dec("6.50"), Image: "/images/bruschetta.jpg", Category: "antipasti"},
		{Name: "Tagliere di Salumi e Formaggi", Description: "Selezione di salumi e formaggi locali con miele e confetture", Price: dec("12.00"), Image: "/images/tagliere.jpg", Category: "antipasti"},
		{Name: "Pizza Margherita", Description: "Pomodoro San Marzano, mozzarella fior di latte, basilico", Price: dec("9.00"), Image: "/images/margherita.jpg", Category: "pizze"},
		{Name: "Pizza Diavola", Description: "Pomodoro, mozzarella, salame piccante", Price: dec("10.50"), Image: "/images/diavola.jpg", Category: "pizze"},
		{Name: "Spaghetti alla Carbonara", Description: "Guanciale croccante, pecorino romano, uova e pepe nero", Price: dec("11.00"), Image: "/images/carbonara.jpg", Category: "primi"},
		{Name: "Lasagne della Casa", Description: "Ragù di carne, besciamella e parmigiano", Price: dec("12.50"), Image: "/images/lasagne.jpg", Category: "primi"},
		{Name: "Tagliata di Manzo", Description: "Con rucola, grana e riduzione al balsamico", Price: dec("18.00"), Image: "/images/tagliata.jpg", Category: "secondi"},
		{Name: "Tiramisù", Description: "Ricetta tradizionale con mascarpone e savoiardi", Price: dec("5.00"), Image: "/images/tiramisu.jpg", Category: "dolci"},
		{Name: "Panna Cotta ai Frutti di Bosco", Description: "Con coulis di frutti di bosco freschi", Price: dec("5.50"), Image: "/images/pannacotta.jpg", Category: "dolci"},
	}

	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].Available = 1
	}

	if err := db.Create(&items).Error; err != nil {
		utils.ErrorLogger.Printf("Error seeding menu: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(items))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

package database

import (
	"log"
	"time"

	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData dokłada konto administratora, startowe menu i okno dostępności.
// Jest idempotentne, istniejące rekordy nie są nadpisywane.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("zmien-mnie"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	menuItems := []model.MenuItem{
		{Name: "Żurek staropolski", Description: "Tradycyjny żurek z białą kiełbasą, jajkiem i marynowanymi ogórkami", PriceCents: 1800, Category: model.CategoryStarter, Active: true},
		{Name: "Rosół z makaronem", Description: "Domowy rosół z kurczaka z makaronem i jarzynami", PriceCents: 1500, Category: model.CategoryStarter, Active: true},
		{Name: "Krem z pieczarek", Description: "Delikatny krem z pieczarek podany z grzankami", PriceCents: 1600, Category: model.CategoryStarter, Active: true},
		{Name: "Schabowy z kapustą i ziemniakami", Description: "Klasyczny schabowy z kapustą zasmażaną i ziemniakami", PriceCents: 2800, Category: model.CategoryMain, Active: true},
		{Name: "Pierogi ruskie", Description: "Domowe pierogi z twarogiem i ziemniakami, podane ze skwarkami", PriceCents: 2400, Category: model.CategoryMain, Active: true},
		{Name: "Gulasz węgierski z kluskami", Description: "Aromatyczny gulasz wołowy z papryką i kluskami śląskimi", PriceCents: 3200, Category: model.CategoryMain, Active: true},
		{Name: "Kotlet de volaille", Description: "Kotlet z piersi kurczaka nadziewany masłem ziołowym", PriceCents: 2900, Category: model.CategoryMain, Active: true},
		{Name: "Ryba w sosie koperkowym", Description: "Filet z dorsza w delikatnym sosie koperkowym z ziemniakami", PriceCents: 2600, Category: model.CategoryMain, Active: true},
		{Name: "Sernik na zimno", Description: "Kremowy sernik na zimno z owocami sezonowymi", PriceCents: 1400, Category: model.CategoryDessert, Active: true},
		{Name: "Szarlotka z lodami", Description: "Tradycyjna szarlotka podana z lodami waniliowymi", PriceCents: 1300, Category: model.CategoryDessert, Active: true},
		{Name: "Makowiec", Description: "Domowy makowiec z lukrem i orzechami", PriceCents: 1200, Category: model.CategoryDessert, Active: true},
		{Name: "Kompot owocowy", Description: "Domowy kompot z owoców sezonowych", PriceCents: 800, Category: model.CategoryDrink, Active: true},
		{Name: "Herbata lub kawa", Description: "Wybór herbaty lub kawy", PriceCents: 650, Category: model.CategoryDrink, Active: true},
	}

	for _, item := range menuItems {
		item.Slug = slug.Make(item.Name)
		if err := db.Where(model.MenuItem{Slug: item.Slug}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}

	// 30 dni dostępności od jutra, niedziele zostają wolne od dostaw.
	today := time.Now()
	for i := 1; i <= 30; i++ {
		date := today.AddDate(0, 0, i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		entry := model.Availability{Date: day, IsAvailable: day.Weekday() != time.Sunday}
		if day.Weekday() == time.Sunday {
			entry.Note = utils.Ptr("Niedziela, nie realizujemy dostaw")
		}
		if err := db.Where(model.Availability{Date: day}).FirstOrCreate(&entry).Error; err != nil {
			log.Println("failed to seed availability for", day.Format("2006-01-02"), "error:", err)
		}
	}

	log.Println("Seed completed")
}

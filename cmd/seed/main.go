package main

import (
	"context"
	"errors"
	"log"
	"time"

	categoryadapters "cropscience_backend/internal/feature/categories/adapters"
	categoryentity "cropscience_backend/internal/feature/categories/domain/entity"
	cropadapters "cropscience_backend/internal/feature/crops/adapters"
	cropentity "cropscience_backend/internal/feature/crops/domain/entity"
	"cropscience_backend/internal/platform/config"
	infradb "cropscience_backend/internal/platform/db"
)

// seedCrop pairs a crop with the name of its category.
type seedCrop struct {
	category string
	crop     cropentity.Crop
}

var seedCategories = []categoryentity.Category{
	{Name: "Cereals", Description: "Cereal grain crops."},
	{Name: "Legumes", Description: "Legume crops grown for their seeds."},
	{Name: "Vegetables", Description: "Crops grown for edible plant parts."},
}

var seedCrops = []seedCrop{
	{"Cereals", cropentity.Crop{Name: "Wheat", ScientificName: "Triticum aestivum", Description: "A staple cereal crop.", GrowthDurationDays: 120, WaterRequirements: cropentity.WaterMedium}},
	{"Cereals", cropentity.Crop{Name: "Rice", ScientificName: "Oryza sativa", Description: "A major food crop.", GrowthDurationDays: 150, WaterRequirements: cropentity.WaterHigh}},
	{"Cereals", cropentity.Crop{Name: "Millet", ScientificName: "Panicum miliaceum", Description: "A drought-tolerant grain.", GrowthDurationDays: 70, WaterRequirements: cropentity.WaterLow}},
	{"Legumes", cropentity.Crop{Name: "Lentil", ScientificName: "Lens culinaris", Description: "An edible pulse.", GrowthDurationDays: 100, WaterRequirements: cropentity.WaterLow}},
	{"Legumes", cropentity.Crop{Name: "Soybean", ScientificName: "Glycine max", Description: "A protein-rich legume.", GrowthDurationDays: 110, WaterRequirements: cropentity.WaterMedium}},
	{"Vegetables", cropentity.Crop{Name: "Tomato", ScientificName: "Solanum lycopersicum", Description: "A widely grown fruit vegetable.", GrowthDurationDays: 80, WaterRequirements: cropentity.WaterHigh}},
}

// main loads the default reference data, but only into an empty store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db := infradb.OpenDB(cfg.DB)
	categoryRepo := categoryadapters.NewCategoryPostgres(db)
	cropRepo := cropadapters.NewCropPostgres(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	existing, err := categoryRepo.List(ctx)
	if err != nil {
		log.Fatal("failed to inspect categories:", err)
	}
	if len(existing) > 0 {
		log.Println("data already exists, skipping seed")
		return
	}

	ids := make(map[string]uint, len(seedCategories))
	for i := range seedCategories {
		c := seedCategories[i]
		if err := categoryRepo.Create(ctx, &c); err != nil {
			log.Fatal("failed to seed category:", err)
		}
		ids[c.Name] = c.ID
	}

	for _, s := range seedCrops {
		id, ok := ids[s.category]
		if !ok {
			log.Fatal(errors.New("seed crop references unknown category " + s.category))
		}
		crop := s.crop
		crop.CategoryID = id
		if err := cropRepo.Create(ctx, &crop); err != nil {
			log.Fatal("failed to seed crop:", err)
		}
	}

	log.Println("seed ok")
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/RBazelais/BoltBucket/catalog"
	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main drops and recreates the items and colors tables, then inserts the
// sample data. Destructive by design; run it as an offline maintenance step,
// never against a database with builds you want to keep.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("BOLTBUCKET - Database Reset & Seed")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	resetItemsTable()
	resetColorsTable()
	seedColors()
	seedItems()

	fmt.Println()
	fmt.Println("🎉 Database seeded successfully")
}

func resetItemsTable() {
	if err := config.DB.Migrator().DropTable(&models.Item{}); err != nil {
		log.Fatalf("Failed to drop items table: %v", err)
	}
	if err := config.DB.Migrator().CreateTable(&models.Item{}); err != nil {
		log.Fatalf("Failed to create items table: %v", err)
	}
	log.Println("✓ items table recreated")
}

func resetColorsTable() {
	ctx := context.Background()
	statements := []string{
		`DROP TABLE IF EXISTS colors`,
		`CREATE TABLE colors (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			hex_code VARCHAR(7) NOT NULL,
			price_adjustment NUMERIC(10,2) DEFAULT 0.00,
			is_metallic BOOLEAN DEFAULT false,
			is_available BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := config.Pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed to reset colors table: %v", err)
		}
	}
	log.Println("✓ colors table recreated")
}

func seedColors() {
	ctx := context.Background()
	colors := []struct {
		name       string
		hexCode    string
		adjustment float64
		metallic   bool
	}{
		{"Arctic White", "#FFFFFF", 0, false},
		{"Midnight Black", "#000000", 0, false},
		{"Stellar Silver", "#C0C0C0", 500, true},
		{"Racing Red", "#FF0000", 300, false},
		{"Ocean Blue Metallic", "#0000FF", 750, true},
	}

	for _, color := range colors {
		_, err := config.Pool.Exec(ctx, `
			INSERT INTO colors (name, hex_code, price_adjustment, is_metallic)
			VALUES ($1, $2, $3, $4)`,
			color.name, color.hexCode, color.adjustment, color.metallic)
		if err != nil {
			log.Fatalf("Failed to seed color %q: %v", color.name, err)
		}
		log.Printf("✓ seeded color: %s", color.name)
	}
}

func seedItems() {
	cat := catalog.Default()

	items := []models.Item{
		{
			Name:       "Accelerate Yellow Dream Machine",
			Make:       "Custom",
			Model:      "Sport Coupe",
			Year:       2024,
			Price:      50000,
			Currency:   "USD",
			PricePoint: "$$$",
			Image:      "/assets/images/exteriors/accelerate_yellow.png",
			Images:     models.ImageList{},
			CategoryImages: models.CategoryImageMap{
				catalog.CategoryExterior: snapshots(cat, catalog.CategoryExterior, "exterior9"),
				catalog.CategoryRoof:     snapshots(cat, catalog.CategoryRoof, "roof3"),
				catalog.CategoryWheels:   snapshots(cat, catalog.CategoryWheels, "wheel1"),
				catalog.CategoryInterior: snapshots(cat, catalog.CategoryInterior, "interior1"),
			},
			Description: "High-performance custom build with Accelerate Yellow exterior, visible carbon fiber roof, and Adrenaline Red interior.",
			Tags:        models.TagList{"custom", "sport", "performance", "yellow"},
			Owner:       models.Owner{Name: "Alex Rivera", Contact: "alex@example.com"},
			Location:    "Los Angeles, CA",
			Condition:   "New",
			SubmittedBy: "Alex Rivera",
			IsFeatured:  true,
		},
		{
			Name:       "Elkhart Lake Blue Special",
			Make:       "Custom",
			Model:      "GT Roadster",
			Year:       2024,
			Price:      52000,
			Currency:   "USD",
			PricePoint: "$$$",
			Image:      "/assets/images/exteriors/elkhart_lake_blue.png",
			Images:     models.ImageList{},
			CategoryImages: models.CategoryImageMap{
				catalog.CategoryExterior: snapshots(cat, catalog.CategoryExterior, "exterior10"),
				catalog.CategoryRoof:     snapshots(cat, catalog.CategoryRoof, "roof4"),
				catalog.CategoryWheels:   snapshots(cat, catalog.CategoryWheels, "wheel4"),
				catalog.CategoryInterior: snapshots(cat, catalog.CategoryInterior, "interior3"),
			},
			Description: "Stunning blue custom roadster with premium carbon fiber roof and Sky Cool Gray interior.",
			Tags:        models.TagList{"custom", "luxury", "roadster", "blue"},
			Owner:       models.Owner{Name: "Jordan Chen", Contact: "jordan@example.com"},
			Location:    "San Francisco, CA",
			Condition:   "New",
			SubmittedBy: "Jordan Chen",
			IsFeatured:  true,
		},
		{
			Name:       "Torch Red Thunder",
			Make:       "Custom",
			Model:      "Performance",
			Year:       2024,
			Price:      51000,
			Currency:   "USD",
			PricePoint: "$$$",
			Image:      "/assets/images/exteriors/torch_red.png",
			Images:     models.ImageList{},
			CategoryImages: models.CategoryImageMap{
				catalog.CategoryExterior: snapshots(cat, catalog.CategoryExterior, "exterior8"),
				catalog.CategoryRoof:     snapshots(cat, catalog.CategoryRoof, "roof2"),
				catalog.CategoryWheels:   snapshots(cat, catalog.CategoryWheels, "wheel2"),
				catalog.CategoryInterior: snapshots(cat, catalog.CategoryInterior, "interior2"),
			},
			Description: "Bold red performance build with carbon flash wheels and jet black interior for the ultimate driving experience.",
			Tags:        models.TagList{"custom", "performance", "sport", "red"},
			Owner:       models.Owner{Name: "Sam Taylor", Contact: "sam@example.com"},
			Location:    "Austin, TX",
			Condition:   "New",
			SubmittedBy: "Sam Taylor",
		},
		{
			Name:       "Arctic White Elegance",
			Make:       "Custom",
			Model:      "Luxury Sedan",
			Year:       2024,
			Price:      48000,
			Currency:   "USD",
			PricePoint: "$$$",
			Image:      "/assets/images/exteriors/arctic_white.png",
			Images:     models.ImageList{},
			CategoryImages: models.CategoryImageMap{
				catalog.CategoryExterior: snapshots(cat, catalog.CategoryExterior, "exterior2"),
				catalog.CategoryRoof:     snapshots(cat, catalog.CategoryRoof, "roof5"),
				catalog.CategoryWheels:   snapshots(cat, catalog.CategoryWheels, "wheel6"),
				catalog.CategoryInterior: snapshots(cat, catalog.CategoryInterior, "interior2"),
			},
			Description: "Clean and elegant white build with machined face wheels and jet black interior - perfect for luxury enthusiasts.",
			Tags:        models.TagList{"custom", "luxury", "elegant", "white"},
			Owner:       models.Owner{Name: "Morgan Lee", Contact: "morgan@example.com"},
			Location:    "Miami, FL",
			Condition:   "New",
			SubmittedBy: "Morgan Lee",
		},
	}

	for i := range items {
		if err := config.DB.Create(&items[i]).Error; err != nil {
			log.Fatalf("Failed to seed item %q: %v", items[i].Name, err)
		}
		log.Printf("✓ seeded: %s", items[i].Name)
	}
}

// snapshots copies one catalog option into the zero-or-one element list shape
// category_images stores.
func snapshots(cat *catalog.Catalog, category, id string) []models.OptionSnapshot {
	opt, ok := cat.FindOption(category, id)
	if !ok {
		log.Fatalf("Seed references unknown option %q in category %q", id, category)
	}
	return []models.OptionSnapshot{{
		ID:    opt.ID,
		Label: opt.Label,
		Image: opt.Image,
		Price: opt.Price,
	}}
}

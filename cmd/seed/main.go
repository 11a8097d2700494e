package main

import (
	"github.com/pizza-palace/internal/config"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Pizzas", SortOrder: 1},
		{Name: "Sides", SortOrder: 2},
		{Name: "Drinks", SortOrder: 3},
		{Name: "Desserts", SortOrder: 4},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}

	// 添加商品
	products := []models.Product{
		{
			CategoryID:  categoryIDs["Pizzas"],
			Name:        "Margherita",
			Description: "Tomato sauce, fresh mozzarella, basil",
			Price:       models.NewMoneyFromFloat(10.00),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Pizzas"],
			Name:        "Pepperoni",
			Description: "Tomato sauce, mozzarella, pepperoni",
			Price:       models.NewMoneyFromFloat(12.00),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Pizzas"],
			Name:        "Quattro Formaggi",
			Description: "Mozzarella, gorgonzola, parmesan, fontina",
			Price:       models.NewMoneyFromFloat(13.50),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Pizzas"],
			Name:        "Veggie Supreme",
			Description: "Peppers, onions, mushrooms, sweetcorn",
			Price:       models.NewMoneyFromFloat(11.50),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Sides"],
			Name:        "Garlic Bread",
			Description: "Freshly baked with garlic butter",
			Price:       models.NewMoneyFromFloat(4.50),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Sides"],
			Name:        "Chicken Wings",
			Description: "Eight wings with BBQ dip",
			Price:       models.NewMoneyFromFloat(7.00),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Drinks"],
			Name:        "Cola 330ml",
			Description: "Chilled can",
			Price:       models.NewMoneyFromFloat(2.00),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Drinks"],
			Name:        "Sparkling Water 500ml",
			Description: "Chilled bottle",
			Price:       models.NewMoneyFromFloat(1.80),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["Desserts"],
			Name:        "Tiramisu",
			Description: "Classic Italian dessert",
			Price:       models.NewMoneyFromFloat(5.50),
			IsActive:    true,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	// 添加配料
	toppings := []models.Topping{
		{Name: "Extra Cheese", Price: models.NewMoneyFromFloat(1.00), IsActive: true},
		{Name: "Olives", Price: models.NewMoneyFromFloat(1.50), IsActive: true},
		{Name: "Mushrooms", Price: models.NewMoneyFromFloat(1.00), IsActive: true},
		{Name: "Ham", Price: models.NewMoneyFromFloat(2.00), IsActive: true},
		{Name: "Jalapenos", Price: models.NewMoneyFromFloat(0.80), IsActive: true},
		{Name: "Fresh Basil", Price: models.NewMoneyFromFloat(0.50), IsActive: true},
	}
	for _, topping := range toppings {
		var existing models.Topping
		if err := models.DB.Where("name = ?", topping.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&topping).Error; err != nil {
				stdLog.Printf("Failed to create topping %s: %v", topping.Name, err)
			} else {
				stdLog.Printf("Created topping: %s", topping.Name)
			}
		} else {
			stdLog.Printf("Topping already exists: %s", topping.Name)
		}
	}

	stdLog.Printf("Seed finished")
}

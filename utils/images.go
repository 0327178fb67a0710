package utils

import (
	"strings"

	"github.com/Sorin-PSP/EatWise-sub000/models"
)

// DefaultFoodImage is the last-resort image for foods that match neither a
// known name nor a category default.
const DefaultFoodImage = "https://images.unsplash.com/photo-1498837167922-ddd27525d352?w=400"

type imageRule struct {
	keyword string
	url     string
}

// Keyword matches run over the lowercased food name in order, first hit
// wins, so the lookup stays deterministic for names like "almond milk".
var foodImagesByName = []imageRule{
	{"chicken", "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400"},
	{"beef", "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=400"},
	{"salmon", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400"},
	{"tuna", "https://images.unsplash.com/photo-1597733153203-a54d0fbc47de?w=400"},
	{"egg", "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=400"},
	{"rice", "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400"},
	{"pasta", "https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=400"},
	{"bread", "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400"},
	{"oat", "https://images.unsplash.com/photo-1517673132405-a56a62b18caf?w=400"},
	{"potato", "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400"},
	{"apple", "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400"},
	{"banana", "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400"},
	{"orange", "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?w=400"},
	{"berry", "https://images.unsplash.com/photo-1425934398893-310a009a77f9?w=400"},
	{"avocado", "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400"},
	{"broccoli", "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400"},
	{"spinach", "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400"},
	{"carrot", "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=400"},
	{"tomato", "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400"},
	{"almond", "https://images.unsplash.com/photo-1508061253366-f7da158b6d46?w=400"},
	{"milk", "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
	{"yogurt", "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400"},
	{"cheese", "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=400"},
	{"nut", "https://images.unsplash.com/photo-1508061253366-f7da158b6d46?w=400"},
	{"olive", "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=400"},
}

var foodImagesByCategory = map[models.Category]string{
	models.CategoryProtein:    "https://images.unsplash.com/photo-1607623814075-e51df1bdc82f?w=400",
	models.CategoryCarbs:      "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400",
	models.CategoryFats:       "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=400",
	models.CategoryVegetables: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400",
	models.CategoryFruits:     "https://images.unsplash.com/photo-1610832958506-aa56368176cf?w=400",
	models.CategoryDairy:      "https://images.unsplash.com/photo-1628088062854-d1870b4553da?w=400",
	models.CategoryOther:      DefaultFoodImage,
}

// FoodImageURL derives an image deterministically from name and category.
// Name keyword first, then the category default, then the platform default.
func FoodImageURL(name string, category models.Category) string {
	lower := strings.ToLower(name)
	for _, rule := range foodImagesByName {
		if strings.Contains(lower, rule.keyword) {
			return rule.url
		}
	}
	if url, ok := foodImagesByCategory[category]; ok {
		return url
	}
	return DefaultFoodImage
}

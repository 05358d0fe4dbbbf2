package recipe

import "github.com/hammamikhairi/recipebox/internal/domain"

// builtin returns the bundled dataset in display order.
func builtin() []domain.Recipe {
	return []domain.Recipe{
		avocadoToast(),
		caesarSalad(),
		chocolateChipCookies(),
		buddhaBowl(),
		smoothieBowl(),
		beefStirFry(),
		vegetableStirFry(),
		chickenAlfredo(),
	}
}

func avocadoToast() domain.Recipe {
	return domain.Recipe{
		ID:           1,
		Title:        "Avocado Toast Supreme",
		Categories:   []string{"breakfast", "quick"},
		Tags:         []string{"healthy", "vegan"},
		TimeMinutes:  10,
		Difficulty:   domain.DifficultyEasy,
		Calories:     320,
		Rating:       4.5,
		ServingsBase: 2,
		Ingredients: []domain.Ingredient{
			{Name: "Whole grain bread", Unit: "slices", QuantityBase: 2},
			{Name: "Ripe avocado", Unit: "pcs", QuantityBase: 1},
			{Name: "Cherry tomatoes", Unit: "pcs", QuantityBase: 6},
			{Name: "Red pepper flakes", Unit: "pinch", QuantityBase: 1},
			{Name: "Lemon juice", Unit: "tbsp", QuantityBase: 1},
			{Name: "Salt", Unit: "pinch", QuantityBase: 1},
		},
		Steps: []string{
			"Toast the bread slices until golden brown",
			"Mash the avocado with lemon juice and salt",
			"Spread avocado mixture on toast",
			"Top with halved cherry tomatoes and red pepper flakes",
		},
		Image: "🥑",
	}
}

func caesarSalad() domain.Recipe {
	return domain.Recipe{
		ID:           2,
		Title:        "Classic Chicken Caesar Salad",
		Categories:   []string{"lunch", "dinner"},
		Tags:         []string{"protein", "salad"},
		TimeMinutes:  25,
		Difficulty:   domain.DifficultyMedium,
		Calories:     450,
		Rating:       4.8,
		ServingsBase: 4,
		Ingredients: []domain.Ingredient{
			{Name: "Chicken breast", Unit: "lbs", QuantityBase: 1},
			{Name: "Romaine lettuce", Unit: "heads", QuantityBase: 2},
			{Name: "Parmesan cheese", Unit: "cup", QuantityBase: 0.5},
			{Name: "Caesar dressing", Unit: "cup", QuantityBase: 0.25},
			{Name: "Croutons", Unit: "cup", QuantityBase: 1},
			{Name: "Olive oil", Unit: "tbsp", QuantityBase: 2},
		},
		Steps: []string{
			"Season and grill chicken breast until cooked through",
			"Chop romaine lettuce into bite-sized pieces",
			"Slice grilled chicken into strips",
			"Toss lettuce with dressing and parmesan",
			"Top with chicken strips and croutons",
		},
		Image: "🥗",
	}
}

func chocolateChipCookies() domain.Recipe {
	return domain.Recipe{
		ID:           3,
		Title:        "Chocolate Chip Cookies",
		Categories:   []string{"dessert"},
		Tags:         []string{"sweet", "baking"},
		TimeMinutes:  45,
		Difficulty:   domain.DifficultyEasy,
		Calories:     180,
		Rating:       4.9,
		ServingsBase: 24,
		Ingredients: []domain.Ingredient{
			{Name: "All-purpose flour", Unit: "cups", QuantityBase: 2.25},
			{Name: "Butter", Unit: "cup", QuantityBase: 1},
			{Name: "Brown sugar", Unit: "cup", QuantityBase: 0.75},
			{Name: "White sugar", Unit: "cup", QuantityBase: 0.5},
			{Name: "Eggs", Unit: "pcs", QuantityBase: 2},
			{Name: "Chocolate chips", Unit: "cups", QuantityBase: 2},
			{Name: "Vanilla extract", Unit: "tsp", QuantityBase: 1},
			{Name: "Baking soda", Unit: "tsp", QuantityBase: 1},
		},
		Steps: []string{
			"Preheat oven to 375°F",
			"Cream butter with both sugars",
			"Beat in eggs and vanilla",
			"Mix in flour and baking soda",
			"Fold in chocolate chips",
			"Drop spoonfuls on baking sheet",
			"Bake for 9-11 minutes until golden",
		},
		Image: "🍪",
	}
}

func buddhaBowl() domain.Recipe {
	return domain.Recipe{
		ID:           4,
		Title:        "Quinoa Buddha Bowl",
		Categories:   []string{"lunch", "dinner"},
		Tags:         []string{"healthy", "vegan", "protein"},
		TimeMinutes:  35,
		Difficulty:   domain.DifficultyMedium,
		Calories:     380,
		Rating:       4.3,
		ServingsBase: 2,
		Ingredients: []domain.Ingredient{
			{Name: "Quinoa", Unit: "cup", QuantityBase: 1},
			{Name: "Sweet potato", Unit: "pcs", QuantityBase: 1},
			{Name: "Chickpeas", Unit: "cup", QuantityBase: 1},
			{Name: "Spinach", Unit: "cups", QuantityBase: 2},
			{Name: "Tahini", Unit: "tbsp", QuantityBase: 3},
			{Name: "Lemon juice", Unit: "tbsp", QuantityBase: 2},
			{Name: "Olive oil", Unit: "tbsp", QuantityBase: 2},
		},
		Steps: []string{
			"Cook quinoa according to package instructions",
			"Roast diced sweet potato with olive oil",
			"Drain and rinse chickpeas",
			"Whisk tahini with lemon juice for dressing",
			"Arrange all components in bowls",
			"Drizzle with tahini dressing",
		},
		Image: "🥙",
	}
}

func smoothieBowl() domain.Recipe {
	return domain.Recipe{
		ID:           5,
		Title:        "Berry Smoothie Bowl",
		Categories:   []string{"breakfast"},
		Tags:         []string{"healthy", "vegan", "quick"},
		TimeMinutes:  8,
		Difficulty:   domain.DifficultyEasy,
		Calories:     290,
		Rating:       4.6,
		ServingsBase: 1,
		Ingredients: []domain.Ingredient{
			{Name: "Frozen mixed berries", Unit: "cup", QuantityBase: 1},
			{Name: "Banana", Unit: "pcs", QuantityBase: 0.5},
			{Name: "Almond milk", Unit: "cup", QuantityBase: 0.5},
			{Name: "Granola", Unit: "tbsp", QuantityBase: 3},
			{Name: "Fresh berries", Unit: "cup", QuantityBase: 0.25},
			{Name: "Chia seeds", Unit: "tsp", QuantityBase: 1},
		},
		Steps: []string{
			"Blend frozen berries, banana, and almond milk until thick",
			"Pour into bowl",
			"Top with granola, fresh berries, and chia seeds",
			"Serve immediately",
		},
		Image: "🫐",
	}
}

func beefStirFry() domain.Recipe {
	return domain.Recipe{
		ID:           6,
		Title:        "Beef Stir Fry",
		Categories:   []string{"dinner"},
		Tags:         []string{"protein", "quick"},
		TimeMinutes:  20,
		Difficulty:   domain.DifficultyMedium,
		Calories:     420,
		Rating:       4.4,
		ServingsBase: 3,
		Ingredients: []domain.Ingredient{
			{Name: "Beef strips", Unit: "lbs", QuantityBase: 1},
			{Name: "Bell peppers", Unit: "pcs", QuantityBase: 2},
			{Name: "Broccoli", Unit: "cups", QuantityBase: 2},
			{Name: "Soy sauce", Unit: "tbsp", QuantityBase: 3},
			{Name: "Garlic", Unit: "cloves", QuantityBase: 3},
			{Name: "Ginger", Unit: "tbsp", QuantityBase: 1},
			{Name: "Vegetable oil", Unit: "tbsp", QuantityBase: 2},
		},
		Steps: []string{
			"Heat oil in large pan or wok",
			"Cook beef strips until browned",
			"Add garlic and ginger, stir for 30 seconds",
			"Add vegetables and stir-fry for 3-4 minutes",
			"Add soy sauce and toss everything together",
			"Serve hot over rice",
		},
		Image: "🥩",
	}
}

func vegetableStirFry() domain.Recipe {
	return domain.Recipe{
		ID:           7,
		Title:        "Vegetable Stir Fry",
		Categories:   []string{"dinner"},
		Tags:         []string{"asian", "vegetables", "quick", "vegan", "healthy"},
		TimeMinutes:  25,
		Difficulty:   domain.DifficultyEasy,
		Calories:     310,
		Rating:       4.2,
		ServingsBase: 2,
		Ingredients: []domain.Ingredient{
			{Name: "Bell peppers", Unit: "pcs", QuantityBase: 1},
			{Name: "Broccoli", Unit: "cups", QuantityBase: 2},
			{Name: "Carrot", Unit: "pcs", QuantityBase: 1},
			{Name: "Snap peas", Unit: "cup", QuantityBase: 1},
			{Name: "Garlic", Unit: "cloves", QuantityBase: 3},
			{Name: "Ginger", Unit: "tbsp", QuantityBase: 1},
			{Name: "Soy sauce", Unit: "tbsp", QuantityBase: 2},
			{Name: "Sesame oil", Unit: "tbsp", QuantityBase: 1},
			{Name: "Vegetable oil", Unit: "tbsp", QuantityBase: 2},
			{Name: "Rice", Unit: "cup", QuantityBase: 1},
		},
		Steps: []string{
			"Start the rice first",
			"Slice the bell pepper, cut the broccoli into florets, julienne the carrot, trim the snap peas",
			"Mix soy sauce and sesame oil with 2 tablespoons of water",
			"Heat the wok on high until it just starts to smoke, then add the vegetable oil",
			"Stir-fry broccoli and carrot for 2 minutes, then peppers and snap peas for 2 more",
			"Add garlic and ginger to the center of the pan for 30 seconds, then toss everything",
			"Pour over the sauce and toss until it thickens slightly",
			"Serve immediately over rice",
		},
		Image: "🥦",
	}
}

func chickenAlfredo() domain.Recipe {
	return domain.Recipe{
		ID:           8,
		Title:        "Chicken Alfredo",
		Categories:   []string{"dinner"},
		Tags:         []string{"italian", "pasta", "chicken", "comfort"},
		TimeMinutes:  40,
		Difficulty:   domain.DifficultyHard,
		Calories:     780,
		Rating:       4.7,
		ServingsBase: 2,
		Ingredients: []domain.Ingredient{
			{Name: "Spaghetti", Unit: "lbs", QuantityBase: 0.5},
			{Name: "Chicken breast", Unit: "pcs", QuantityBase: 2},
			{Name: "Creme fraiche", Unit: "cup", QuantityBase: 1},
			{Name: "Gruyere cheese", Unit: "cup", QuantityBase: 1},
			{Name: "Butter", Unit: "tbsp", QuantityBase: 3},
			{Name: "Garlic", Unit: "cloves", QuantityBase: 4},
			{Name: "Olive oil", Unit: "tbsp", QuantityBase: 1},
		},
		Steps: []string{
			"Bring a large pot of salted water to a boil",
			"Season the chicken and pound it to an even thickness",
			"Sear the chicken in olive oil about 6 minutes per side, then rest it",
			"Cook the spaghetti until al dente and reserve a cup of pasta water",
			"Melt the butter and cook the garlic for a minute until fragrant",
			"Stir in the creme fraiche and simmer for 3 minutes",
			"Off the heat, melt in the gruyere, loosening with pasta water",
			"Toss the pasta in the sauce and top with sliced chicken",
		},
		Image: "🍝",
	}
}

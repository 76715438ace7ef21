package catalog

import "github.com/athulvp5125/Mood-Meal/internal/domain"

// Builtin returns the default six-recipe catalog.
func Builtin() *Static {
	return NewStatic(builtinRecipes)
}

var builtinRecipes = []domain.Recipe{
	{
		ID:          "1",
		Title:       "Comforting Mac and Cheese",
		Description: "A creamy, cheesy pasta dish that brings warmth and comfort to your day.",
		Image:       "https://images.pexels.com/photos/1438672/pexels-photo-1438672.jpeg?auto=compress&cs=tinysrgb&w=1200",
		CookTime:    30,
		Servings:    4,
		Calories:    450,
		Difficulty:  "Easy",
		Tags:        []string{"comfort food", "pasta", "cheesy", "vegetarian"},
		Ingredients: []string{
			"250g elbow macaroni",
			"3 tbsp butter",
			"3 tbsp all-purpose flour",
			"2 cups milk",
			"2 cups grated cheddar cheese",
			"1/2 cup grated parmesan cheese",
			"Salt and pepper to taste",
			"1/4 tsp paprika",
		},
		Instructions: []string{
			"Cook macaroni according to package directions. Drain and set aside.",
			"In a medium saucepan, melt butter over medium heat. Add flour and stir until combined.",
			"Gradually whisk in milk and cook until mixture thickens, about 5 minutes.",
			"Remove from heat and stir in cheeses until melted and smooth.",
			"Add cooked macaroni to cheese sauce and stir to combine. Season with salt, pepper, and paprika.",
			"Serve hot and enjoy your comforting meal!",
		},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "450 kcal"},
			{Name: "Protein", Value: "18g"},
			{Name: "Carbs", Value: "45g"},
			{Name: "Fat", Value: "22g"},
		},
		MoodCategories: []string{"sad", "anxious"},
	},
	{
		ID:          "2",
		Title:       "Energizing Berry Smoothie Bowl",
		Description: "A vibrant, antioxidant-rich smoothie bowl that will boost your energy and mood.",
		Image:       "https://images.pexels.com/photos/1099680/pexels-photo-1099680.jpeg?auto=compress&cs=tinysrgb&w=1200",
		CookTime:    10,
		Servings:    1,
		Calories:    320,
		Difficulty:  "Easy",
		Tags:        []string{"breakfast", "vegan", "gluten-free", "energizing"},
		Ingredients: []string{
			"1 frozen banana",
			"1 cup mixed frozen berries (strawberries, blueberries, raspberries)",
			"1/4 cup almond milk",
			"1 tbsp chia seeds",
			"1 tbsp almond butter",
			"Toppings: fresh berries, granola, coconut flakes, banana slices",
		},
		Instructions: []string{
			"Add frozen banana, mixed berries, almond milk, and almond butter to a blender.",
			"Blend until smooth, adding more almond milk if needed to reach desired consistency.",
			"Pour into a bowl and sprinkle with chia seeds.",
			"Add toppings of your choice: fresh berries, granola, coconut flakes, and banana slices.",
			"Enjoy immediately for maximum energy boost!",
		},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "320 kcal"},
			{Name: "Protein", Value: "8g"},
			{Name: "Carbs", Value: "55g"},
			{Name: "Fat", Value: "10g"},
		},
		MoodCategories: []string{"tired", "energetic", "happy"},
	},
	{
		ID:          "3",
		Title:       "Calming Chamomile Lavender Tea Cookies",
		Description: "Delicate, lightly sweetened cookies infused with calming chamomile and lavender.",
		Image:       "https://images.pexels.com/photos/230325/pexels-photo-230325.jpeg?auto=compress&cs=tinysrgb&w=1200",
		CookTime:    25,
		Servings:    24,
		Calories:    95,
		Difficulty:  "Medium",
		Tags:        []string{"dessert", "tea time", "calming", "baking"},
		Ingredients: []string{
			"2 cups all-purpose flour",
			"1/2 cup granulated sugar",
			"1/2 cup unsalted butter, softened",
			"1 egg",
			"2 tbsp dried chamomile flowers",
			"1 tbsp dried culinary lavender",
			"1 tsp vanilla extract",
			"1/4 tsp salt",
			"1 tbsp honey",
		},
		Instructions: []string{
			"Preheat oven to 350°F (175°C) and line a baking sheet with parchment paper.",
			"In a medium bowl, whisk together flour and salt. Set aside.",
			"In a large bowl, cream together butter and sugar until light and fluffy.",
			"Beat in egg, vanilla extract, and honey.",
			"Stir in chamomile flowers and lavender.",
			"Gradually add flour mixture and mix until just combined.",
			"Roll dough into 1-inch balls and place on baking sheet, flattening slightly.",
			"Bake for 10-12 minutes until edges are lightly golden.",
			"Allow to cool on baking sheet for 5 minutes before transferring to a wire rack.",
		},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "95 kcal"},
			{Name: "Protein", Value: "1g"},
			{Name: "Carbs", Value: "12g"},
			{Name: "Fat", Value: "5g"},
		},
		// "stressed" is not a detectable mood; the label is kept as data.
		MoodCategories: []string{"anxious", "stressed"},
	},
	{
		ID:          "4",
		Title:       "Spicy Kimchi Fried Rice",
		Description: "A bold, flavorful dish with the perfect balance of heat and tanginess to awaken your senses.",
		Image:       "https://images.pexels.com/photos/5339079/pexels-photo-5339079.jpeg?auto=compress&cs=tinysrgb&w=1200",
		CookTime:    20,
		Servings:    2,
		Calories:    380,
		Difficulty:  "Easy",
		Tags:        []string{"korean", "spicy", "energizing", "rice"},
		Ingredients: []string{
			"2 cups cooked and cooled rice",
			"1 cup kimchi, chopped",
			"2 tbsp kimchi juice",
			"2 tbsp vegetable oil",
			"2 eggs",
			"2 green onions, sliced",
			"1 tbsp sesame oil",
			"1 tsp sesame seeds",
			"Optional: 1/2 cup diced spam or tofu",
		},
		Instructions: []string{
			"Heat vegetable oil in a large skillet or wok over medium-high heat.",
			"If using spam or tofu, add and cook until crispy, about 2-3 minutes.",
			"Add kimchi and stir-fry for 1-2 minutes until fragrant.",
			"Add rice, breaking up any clumps, and kimchi juice. Stir-fry for 3-4 minutes.",
			"Push rice mixture to one side and crack eggs into the empty space. Scramble until just set, then mix with rice.",
			"Stir in green onions and sesame oil. Cook for another minute.",
			"Serve hot, garnished with sesame seeds and additional green onions if desired.",
		},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "380 kcal"},
			{Name: "Protein", Value: "10g"},
			{Name: "Carbs", Value: "45g"},
			{Name: "Fat", Value: "18g"},
		},
		MoodCategories: []string{"tired", "angry"},
	},
	{
		ID:          "5",
		Title:       "Chocolate Avocado Mousse",
		Description: "A rich, indulgent dessert that's secretly nutritious and perfect for boosting your mood.",
		Image:       "https://images.pexels.com/photos/1028711/pexels-photo-1028711.jpeg?auto=compress&cs=tinysrgb&w=1200",
		CookTime:    15,
		Servings:    4,
		Calories:    220,
		Difficulty:  "Easy",
		Tags:        []string{"dessert", "chocolate", "vegan", "gluten-free"},
		Ingredients: []string{
			"2 ripe avocados",
			"1/3 cup cocoa powder",
			"1/4 cup maple syrup or honey",
			"1/4 cup almond milk",
			"1 tsp vanilla extract",
			"Pinch of salt",
			"Berries for garnish",
		},
		Instructions: []string{
			"Cut avocados in half, remove pits, and scoop flesh into a food processor.",
			"Add cocoa powder, maple syrup, almond milk, vanilla extract, and salt.",
			"Process until completely smooth, stopping to scrape down the sides as needed.",
			"Taste and adjust sweetness if necessary.",
			"Transfer to serving glasses and refrigerate for at least 30 minutes.",
			"Garnish with berries before serving.",
		},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "220 kcal"},
			{Name: "Protein", Value: "4g"},
			{Name: "Carbs", Value: "22g"},
			{Name: "Fat", Value: "15g"},
		},
		MoodCategories: []string{"sad", "happy"},
	},
	{
		ID:          "6",
		Title:       "Mediterranean Grilled Chicken Salad",
		Description: "A bright, flavorful salad with lean protein and plenty of vegetables for balanced energy.",
		Image:       "https://images.pexels.com/photos/434258/pexels-photo-434258.jpeg?auto=compress&cs=tinysrgb&w=1200",
		CookTime:    25,
		Servings:    2,
		Calories:    420,
		Difficulty:  "Medium",
		Tags:        []string{"mediterranean", "healthy", "protein", "salad"},
		Ingredients: []string{
			"2 boneless, skinless chicken breasts",
			"2 tbsp olive oil, divided",
			"1 tsp dried oregano",
			"1 tsp dried thyme",
			"4 cups mixed greens",
			"1 cucumber, diced",
			"1 cup cherry tomatoes, halved",
			"1/2 red onion, thinly sliced",
			"1/2 cup kalamata olives, pitted",
			"1/4 cup feta cheese, crumbled",
			"For dressing: 2 tbsp olive oil, 1 tbsp lemon juice, 1 tsp Dijon mustard, 1 clove garlic (minced), salt and pepper",
		},
		Instructions: []string{
			"Season chicken breasts with oregano, thyme, salt, and pepper.",
			"Heat 1 tbsp olive oil in a grill pan over medium-high heat. Grill chicken for 6-7 minutes per side until cooked through.",
			"Let chicken rest for 5 minutes, then slice.",
			"In a large bowl, combine mixed greens, cucumber, tomatoes, red onion, and olives.",
			"In a small bowl, whisk together dressing ingredients.",
			"Toss salad with dressing, top with grilled chicken and feta cheese.",
			"Serve immediately for a refreshing and energizing meal.",
		},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "420 kcal"},
			{Name: "Protein", Value: "35g"},
			{Name: "Carbs", Value: "12g"},
			{Name: "Fat", Value: "26g"},
		},
		MoodCategories: []string{"energetic", "neutral"},
	},
}

package eatfood

func SampleRecipes() []Recipe {
	return []Recipe{
		{Name: "番茄炒蛋", Ingredients: []string{"鸡蛋 3个", "番茄 2个", "油 15克", "盐 5克", "糖 3克"}},
		{Name: "米饭", Ingredients: []string{"大米 200克", "水 400毫升"}},
		{Name: "凉拌黄瓜", Ingredients: []string{"黄瓜 2根", "蒜 3瓣", "醋 10毫升", "香油 5毫升"}},
	}
}

// SampleLunch is an ordinary lunch of about 555 kcal.
func SampleLunch() []Portion {
	return []Portion{
		{Name: "米饭", Grams: 200},
		{Name: "鸡胸肉", Grams: 150},
		{Name: "番茄", Grams: 100},
		{Name: "黄瓜", Grams: 100},
		{Name: "食用油", Grams: 10},
	}
}

func SampleDay() []Meal {
	return []Meal{
		{Name: "早餐", Foods: []Portion{
			{Name: "牛奶", Grams: 250},
			{Name: "鸡蛋", Grams: 50},
			{Name: "面包", Grams: 100},
		}},
		{Name: "午餐", Foods: []Portion{
			{Name: "米饭", Grams: 200},
			{Name: "鸡胸肉", Grams: 150},
			{Name: "番茄", Grams: 100},
			{Name: "菠菜", Grams: 100},
		}},
		{Name: "晚餐", Foods: []Portion{
			{Name: "米饭", Grams: 150},
			{Name: "鸡蛋", Grams: 100},
			{Name: "白菜", Grams: 200},
		}},
	}
}

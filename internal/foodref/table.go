package foodref

import (
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// foods is the built-in reference table. Values are per 100 g.
var foods = []domain.FoodItem{
	{ID: "1", Name: "Chicken Breast (cooked)", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	{ID: "2", Name: "Salmon (cooked)", Calories: 206, Protein: 22, Carbs: 0, Fats: 13},
	{ID: "3", Name: "Egg (large, boiled)", Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11},
	{ID: "4", Name: "Tofu (firm)", Calories: 76, Protein: 8, Carbs: 1.9, Fats: 4.8},
	{ID: "5", Name: "Ground Beef (85% lean, cooked)", Calories: 217, Protein: 26, Carbs: 0, Fats: 11},
	{ID: "6", Name: "Turkey Breast (cooked)", Calories: 135, Protein: 30, Carbs: 0, Fats: 1},
	{ID: "7", Name: "Shrimp (cooked)", Calories: 99, Protein: 24, Carbs: 0.2, Fats: 0.3},
	{ID: "8", Name: "Tuna (canned in water)", Calories: 116, Protein: 26, Carbs: 0, Fats: 1},
	{ID: "9", Name: "Pork Chop (cooked)", Calories: 221, Protein: 29, Carbs: 0, Fats: 11},
	{ID: "10", Name: "Greek Yogurt (plain, non-fat)", Calories: 59, Protein: 10, Carbs: 3.6, Fats: 0.4},
	{ID: "11", Name: "White Rice (cooked)", Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3},
	{ID: "12", Name: "Brown Rice (cooked)", Calories: 111, Protein: 2.6, Carbs: 23, Fats: 0.9},
	{ID: "13", Name: "Pasta (cooked)", Calories: 131, Protein: 5, Carbs: 25, Fats: 1.1},
	{ID: "14", Name: "Quinoa (cooked)", Calories: 120, Protein: 4.1, Carbs: 21, Fats: 1.9},
	{ID: "15", Name: "Oats (rolled, dry)", Calories: 389, Protein: 17, Carbs: 66, Fats: 7},
	{ID: "16", Name: "White Bread", Calories: 265, Protein: 9, Carbs: 49, Fats: 3.2},
	{ID: "17", Name: "Whole Wheat Bread", Calories: 247, Protein: 13, Carbs: 41, Fats: 3.4},
	{ID: "18", Name: "Couscous (cooked)", Calories: 112, Protein: 3.8, Carbs: 23, Fats: 0.2},
	{ID: "21", Name: "Whole Milk", Calories: 61, Protein: 3.2, Carbs: 4.8, Fats: 3.3},
	{ID: "22", Name: "Skim Milk", Calories: 35, Protein: 3.4, Carbs: 5, Fats: 0.1},
	{ID: "23", Name: "Cheddar Cheese", Calories: 404, Protein: 25, Carbs: 1.3, Fats: 33},
	{ID: "24", Name: "Mozzarella Cheese", Calories: 280, Protein: 28, Carbs: 3.1, Fats: 17},
	{ID: "25", Name: "Butter", Calories: 717, Protein: 0.9, Carbs: 0.1, Fats: 81},
	{ID: "26", Name: "Cottage Cheese (2% fat)", Calories: 81, Protein: 14, Carbs: 3.4, Fats: 2.3},
	{ID: "27", Name: "Cream Cheese", Calories: 342, Protein: 6, Carbs: 5.5, Fats: 34},
	{ID: "31", Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3},
	{ID: "32", Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2},
	{ID: "33", Name: "Orange", Calories: 47, Protein: 0.9, Carbs: 12, Fats: 0.1},
	{ID: "34", Name: "Strawberries", Calories: 32, Protein: 0.7, Carbs: 8, Fats: 0.3},
	{ID: "35", Name: "Blueberries", Calories: 57, Protein: 0.7, Carbs: 14, Fats: 0.3},
	{ID: "36", Name: "Grapes", Calories: 69, Protein: 0.7, Carbs: 18, Fats: 0.2},
	{ID: "37", Name: "Mango", Calories: 60, Protein: 0.8, Carbs: 15, Fats: 0.4},
	{ID: "38", Name: "Avocado", Calories: 160, Protein: 2, Carbs: 9, Fats: 15},
	{ID: "39", Name: "Watermelon", Calories: 30, Protein: 0.6, Carbs: 8, Fats: 0.2},
	{ID: "41", Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4},
	{ID: "42", Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4},
	{ID: "43", Name: "Carrots", Calories: 41, Protein: 0.9, Carbs: 10, Fats: 0.2},
	{ID: "44", Name: "Tomatoes", Calories: 18, Protein: 0.9, Carbs: 3.9, Fats: 0.2},
	{ID: "45", Name: "Bell Pepper (red)", Calories: 31, Protein: 1, Carbs: 6, Fats: 0.3},
	{ID: "46", Name: "Lettuce (iceberg)", Calories: 14, Protein: 0.9, Carbs: 3, Fats: 0.1},
	{ID: "47", Name: "Cucumber", Calories: 15, Protein: 0.7, Carbs: 3.6, Fats: 0.1},
	{ID: "48", Name: "Onions", Calories: 40, Protein: 1.1, Carbs: 9, Fats: 0.1},
	{ID: "49", Name: "Potatoes (boiled)", Calories: 87, Protein: 1.9, Carbs: 20, Fats: 0.1},
	{ID: "51", Name: "Olive Oil", Calories: 884, Protein: 0, Carbs: 0, Fats: 100},
	{ID: "52", Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fats: 49},
	{ID: "53", Name: "Peanut Butter", Calories: 588, Protein: 25, Carbs: 20, Fats: 50},
	{ID: "54", Name: "Walnuts", Calories: 654, Protein: 15, Carbs: 14, Fats: 65},
	{ID: "55", Name: "Cashews", Calories: 553, Protein: 18, Carbs: 30, Fats: 44},
	{ID: "56", Name: "Sunflower Seeds", Calories: 584, Protein: 21, Carbs: 20, Fats: 51},
	{ID: "61", Name: "Pizza Slice (pepperoni)", Calories: 285, Protein: 12, Carbs: 36, Fats: 10},
	{ID: "62", Name: "Hamburger", Calories: 250, Protein: 13, Carbs: 28, Fats: 9},
	{ID: "63", Name: "Turkey Sandwich", Calories: 200, Protein: 18, Carbs: 24, Fats: 4},
	{ID: "64", Name: "Caesar Salad with Chicken", Calories: 260, Protein: 20, Carbs: 8, Fats: 16},
	{ID: "65", Name: "French Fries", Calories: 312, Protein: 3.4, Carbs: 41, Fats: 15},
	{ID: "66", Name: "Chicken Burrito", Calories: 450, Protein: 25, Carbs: 55, Fats: 15},
	{ID: "101", Name: "Lentils (cooked)", Calories: 116, Protein: 9, Carbs: 20, Fats: 0.4},
	{ID: "102", Name: "Chickpeas (cooked)", Calories: 139, Protein: 7.6, Carbs: 22, Fats: 3.8},
	{ID: "103", Name: "Black Beans (cooked)", Calories: 132, Protein: 8.9, Carbs: 24, Fats: 0.5},
	{ID: "104", Name: "Cod (cooked)", Calories: 105, Protein: 23, Carbs: 0, Fats: 0.7},
	{ID: "105", Name: "Sardines (canned in oil)", Calories: 208, Protein: 25, Carbs: 0, Fats: 11},
	{ID: "106", Name: "Bacon (cooked)", Calories: 541, Protein: 37, Carbs: 1.4, Fats: 42},
	{ID: "107", Name: "Sausage (pork, cooked)", Calories: 334, Protein: 20, Carbs: 1.5, Fats: 27},
	{ID: "108", Name: "Bagel (plain)", Calories: 250, Protein: 10, Carbs: 50, Fats: 1.5},
	{ID: "109", Name: "Croissant", Calories: 406, Protein: 8, Carbs: 46, Fats: 21},
	{ID: "110", Name: "Muffin (blueberry)", Calories: 377, Protein: 5, Carbs: 53, Fats: 16},
	{ID: "111", Name: "Pancakes (plain)", Calories: 227, Protein: 6, Carbs: 45, Fats: 2.7},
	{ID: "112", Name: "Waffles (plain)", Calories: 291, Protein: 8, Carbs: 50, Fats: 6},
	{ID: "113", Name: "Feta Cheese", Calories: 264, Protein: 14, Carbs: 4.1, Fats: 21},
	{ID: "114", Name: "Parmesan Cheese", Calories: 431, Protein: 38, Carbs: 4.1, Fats: 29},
	{ID: "115", Name: "Sour Cream", Calories: 193, Protein: 2.4, Carbs: 4.6, Fats: 19},
	{ID: "116", Name: "Pineapple", Calories: 50, Protein: 0.5, Carbs: 13, Fats: 0.1},
	{ID: "117", Name: "Peach", Calories: 39, Protein: 0.9, Carbs: 10, Fats: 0.3},
	{ID: "118", Name: "Pear", Calories: 57, Protein: 0.4, Carbs: 15, Fats: 0.1},
	{ID: "119", Name: "Cherries", Calories: 50, Protein: 1, Carbs: 12, Fats: 0.3},
	{ID: "120", Name: "Kiwi", Calories: 61, Protein: 1.1, Carbs: 15, Fats: 0.5},
	{ID: "121", Name: "Asparagus", Calories: 20, Protein: 2.2, Carbs: 3.9, Fats: 0.1},
	{ID: "122", Name: "Mushroom", Calories: 22, Protein: 3.1, Carbs: 3.3, Fats: 0.3},
	{ID: "123", Name: "Zucchini", Calories: 17, Protein: 1.2, Carbs: 3.1, Fats: 0.3},
	{ID: "124", Name: "Eggplant", Calories: 25, Protein: 1, Carbs: 6, Fats: 0.2},
	{ID: "125", Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20, Fats: 0.1},
	{ID: "126", Name: "Corn", Calories: 86, Protein: 3.2, Carbs: 19, Fats: 1.2},
	{ID: "127", Name: "Peas", Calories: 81, Protein: 5.4, Carbs: 14, Fats: 0.4},
	{ID: "128", Name: "Canola Oil", Calories: 884, Protein: 0, Carbs: 0, Fats: 100},
	{ID: "129", Name: "Coconut Oil", Calories: 862, Protein: 0, Carbs: 0, Fats: 100},
	{ID: "130", Name: "Pistachios", Calories: 562, Protein: 20, Carbs: 28, Fats: 45},
	{ID: "131", Name: "Pecans", Calories: 691, Protein: 9, Carbs: 14, Fats: 72},
	{ID: "132", Name: "Chia Seeds", Calories: 486, Protein: 17, Carbs: 42, Fats: 31},
	{ID: "133", Name: "Flax Seeds", Calories: 534, Protein: 18, Carbs: 29, Fats: 42},
	{ID: "134", Name: "Ice Cream (vanilla)", Calories: 207, Protein: 3.5, Carbs: 24, Fats: 11},
	{ID: "135", Name: "Chocolate (dark, 70-85%)", Calories: 598, Protein: 7.8, Carbs: 46, Fats: 43},
	{ID: "136", Name: "Popcorn (air-popped)", Calories: 387, Protein: 13, Carbs: 78, Fats: 4.5},
	{ID: "137", Name: "Pretzels", Calories: 380, Protein: 10, Carbs: 80, Fats: 2.5},
	{ID: "138", Name: "Potato Chips", Calories: 536, Protein: 7, Carbs: 53, Fats: 35},
	{ID: "139", Name: "Hummus", Calories: 166, Protein: 7.9, Carbs: 14, Fats: 9.6},
	{ID: "140", Name: "Sushi (salmon roll)", Calories: 150, Protein: 8, Carbs: 25, Fats: 2},
	{ID: "201", Name: "Roti / Chapati", Calories: 297, Protein: 11, Carbs: 60, Fats: 2},
	{ID: "202", Name: "Naan Bread", Calories: 317, Protein: 10, Carbs: 57, Fats: 5},
	{ID: "203", Name: "Dal (lentil soup, cooked)", Calories: 105, Protein: 7, Carbs: 18, Fats: 1},
	{ID: "204", Name: "Paneer (Indian cheese)", Calories: 296, Protein: 18, Carbs: 6, Fats: 22},
	{ID: "205", Name: "Basmati Rice (cooked)", Calories: 135, Protein: 4, Carbs: 28, Fats: 0.5},
	{ID: "206", Name: "Chicken Tikka Masala", Calories: 180, Protein: 14, Carbs: 8, Fats: 10},
	{ID: "207", Name: "Samosa (vegetable, fried)", Calories: 262, Protein: 4, Carbs: 32, Fats: 14},
	{ID: "208", Name: "Chole (chickpea curry)", Calories: 150, Protein: 7, Carbs: 22, Fats: 4},
	{ID: "209", Name: "Palak Paneer", Calories: 160, Protein: 10, Carbs: 8, Fats: 11},
	{ID: "210", Name: "Aloo Gobi", Calories: 98, Protein: 3, Carbs: 13, Fats: 4},
	{ID: "211", Name: "Butter Chicken (Murgh Makhani)", Calories: 210, Protein: 15, Carbs: 6, Fats: 14},
	{ID: "212", Name: "Biryani (chicken)", Calories: 290, Protein: 18, Carbs: 35, Fats: 8},
	{ID: "213", Name: "Raita (yogurt dip)", Calories: 60, Protein: 3, Carbs: 5, Fats: 3},
	{ID: "214", Name: "Idli (steamed rice cake)", Calories: 160, Protein: 4, Carbs: 36, Fats: 0.4},
	{ID: "215", Name: "Dosa (plain)", Calories: 168, Protein: 4, Carbs: 32, Fats: 2.5},
	{ID: "216", Name: "Vada Pav", Calories: 300, Protein: 7, Carbs: 48, Fats: 9},
	{ID: "217", Name: "Gulab Jamun (1 piece)", Calories: 150, Protein: 2, Carbs: 25, Fats: 4.5},
	{ID: "218", Name: "Jalebi (1 piece)", Calories: 100, Protein: 1, Carbs: 22, Fats: 1},
	{ID: "219", Name: "Tandoori Chicken", Calories: 220, Protein: 26, Carbs: 2, Fats: 12},
	{ID: "220", Name: "Ghee", Calories: 899, Protein: 0, Carbs: 0, Fats: 100},
}

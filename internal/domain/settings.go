package domain

// Setting keys stored in the settings collection.
const (
	SettingAPIKey       = "openai_api_key"
	SettingCalorieGoal  = "calorie_goal"
	SettingProteinGoal  = "protein_goal"
	SettingCarbsGoal    = "carbs_goal"
	SettingFatGoal      = "fat_goal"
	SettingHeight       = "user_height"
	SettingWeight       = "user_weight"
	SettingUserStats    = "user_stats"
	SettingHabits       = "habits"
	SettingShoppingList = "shoppingList"
)

package intelligence

// foodPrompt asks for a single-entry macro estimate with Dutch portion sizes.
const foodPrompt = `Analyze this food entry for a Dutch user.
Use standard Dutch portion sizes and nutritional values (NEVO table).
- A slice of bread ("boterham") is about 35g (~82 kcal).
- Toppings such as jam, hagelslag or cheese use standard portions of 15-20g.
- Do not overestimate: "1 boterham met kaas" is about 180-200 kcal.

Return ONLY raw JSON with exactly this structure (no markdown):
{
  "food": "name of the food in Dutch",
  "quantity": "estimated amount, e.g. 100g, 1 kom, 2 sneetjes",
  "calories": 500,
  "protein": 30,
  "carbs": 50,
  "fat": 15
}
If unsure, estimate from standard portions. Be concise.`

// coachPrompt frames the weekly coaching summary. Placeholders are filled
// with JSON context in order: height, weight, schedule, logs.
const coachPrompt = `Role: professional volleyball performance coach.
Objective: review the player's recent nutrition against their body stats and upcoming training.
Language: Dutch (Nederlands).

Player stats:
- Height: %s cm
- Weight: %s kg

Training schedule (next 7 days):
%s

Nutrition logs (most recent):
%s

Give a concise summary of exactly 3 bullets in Dutch about:
1. Calorie intake versus training intensity.
2. Macro balance for recovery (protein) and energy (carbs).
3. One concrete tip for tomorrow.

Return ONLY JSON:
{"feedback": ["...", "...", "..."]}`

// goalsPrompt asks for daily average targets. Placeholders: height, weight, schedule.
const goalsPrompt = `Role: professional sports nutritionist.
Objective: calculate daily calorie and macro targets for a volleyball player.

Player stats:
- Height: %s cm
- Weight: %s kg

Training schedule (next 7 days):
%s

Calculate daily average targets for:
1. Calories (maintenance plus activity)
2. Protein (1.6-2.2 g per kg)
3. Carbs (moderate to high for performance)
4. Fat (remainder)

Return ONLY JSON:
{"calories": 2800, "protein": 160, "carbs": 350, "fat": 80}`

// progressPrompt reviews a month of logs. Placeholders: the four goals, then logs.
const progressPrompt = `Role: professional sports nutritionist.
Objective: analyze the player's nutrition data for the last 30 days.
Language: Dutch (Nederlands).

Goals:
- Calories: %g
- Protein: %gg
- Carbs: %gg
- Fat: %gg

Data (last 30 days):
%s

Give a friendly, motivating analysis in Dutch:
1. Overall trend: are the goals met (mention average calories and protein)?
2. Consistency: how stable is the intake?
3. Three tips: one for protein, one for energy (carbs), one for general health.

Return ONLY JSON:
{"summary": "short paragraph", "tips": ["...", "...", "..."]}`

// mealPrompt composes a meal for the remaining macros. Placeholders: the
// four remaining values, then the pantry list.
const mealPrompt = `Role: pragmatic nutrition logic engine.
Task: compose one meal that matches these remaining macros within 10%%.

Remaining macros:
- Calories: %g
- Protein: %gg
- Carbs: %gg
- Fat: %gg

Available pantry ingredients (priority 1):
%s

Strategy:
1. Use the pantry ingredients first.
2. Fill any gap with easy no-cook foods (fruit, kwark, tuna, protein bar).

Mark every ingredient with "source": "pantry" when it comes from the list, otherwise "store".

Return ONLY JSON:
{
  "meal_name": "creative name",
  "ingredients": [
    {"name": "...", "amount": 100, "unit": "g", "source": "pantry", "macros": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}}
  ],
  "match_score": 90
}`

// fuelPrompt correlates a workout rating with the last 24h of food.
// Placeholders: type, duration, rating, notes, nutrition lines.
const fuelPrompt = `Role: professional sports nutritionist.
Task: correlate the player's workout with their nutrition over the last 24 hours.

Workout:
- Type: %s
- Duration: %d min
- Rating: %d/10
- Notes: %s

Nutrition (last 24h):
%s

Identify ONE nutritional factor that likely influenced this rating.
- Rating above 7: what fueled it (e.g. good carb timing, enough protein)?
- Rating below 6: what was missing (e.g. too few carbs, heavy meal before training)?

Return ONLY JSON:
{"score": 75, "insight": "one sentence", "recommendation": "one tip for next time"}`

// foodDescriptionPrefix labels the user's free text next to the instruction.
const foodDescriptionPrefix = "Food description / portion: "

// Package service builds recipe prompts, talks to the generation backends
// and archives generated drafts.
//
// User answers are interpolated into the prompt verbatim. Nothing is escaped,
// so an answer can steer the model; that only affects the text of the
// request, never code execution.
package service

import (
	"fmt"

	"github.com/pageza/recipe-chef/internal/model"
)

// SystemInstruction sets the chef persona and the exact output layout.
const SystemInstruction = "You are a professional chef and creative recipe developer. " +
	"Your task is to generate a single, complete, and easy-to-follow recipe " +
	"based on the user's specific inputs and constraints. " +
	"The recipe MUST be structured as follows (EXAMPLE):\n\n" +
	"**Recipe Title:** Delicious Chicken Stir-Fry\n\n" +
	"**Ingredients:**\n" +
	"- Chicken breast: 1 lb, cubed\n" +
	"- Broccoli florets: 1 cup\n" +
	"- Soy sauce: 2 tbsp\n" +
	"- Ginger: 1 tsp, minced\n" +
	"- Garlic: 2 cloves, minced\n" +
	"- Cooked rice: 2 cups\n\n" +
	"**Instructions:**\n" +
	"Step 1: Heat a wok or large skillet over high heat.\n" +
	"Step 2: Add the chicken and stir-fry until cooked through.\n" +
	"Step 3: Add the broccoli, soy sauce, ginger, and garlic.\n" +
	"Step 4: Stir-fry for another 3-5 minutes, until the broccoli is tender-crisp.\n" +
	"Step 5: Serve over cooked rice.\n\n" +
	"**Nutritional Information (per serving):**\n" +
	"- Calories: Approximately 400\n" +
	"- Protein: 30g\n" +
	"- Fat: 15g\n" +
	"- Carbohydrates: 40g\n\n" +
	"Do not include any introductory or concluding remarks. Only provide the recipe in the specified format."

const userInstructionTemplate = `
Generate a recipe with the following characteristics:
- **Main Ingredients:** %s
- **Dietary Needs/Preferences:** %s
- **Preferred Cuisine/Style:** %s
- **Time Constraint:** %s

Ensure the recipe includes detailed cooking steps and nutritional information (calories, protein, fat, carbohydrates per serving) and adheres to the format specified in the system instructions.
`

// BuildPrompt turns collected preferences into the system and user instruction.
func BuildPrompt(prefs model.Preferences) model.Prompt {
	return model.Prompt{
		SystemInstruction: SystemInstruction,
		UserInstruction: fmt.Sprintf(userInstructionTemplate,
			prefs.Ingredients,
			prefs.Diet,
			prefs.Cuisine,
			prefs.Time,
		),
	}
}

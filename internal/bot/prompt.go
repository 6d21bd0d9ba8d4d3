package bot

import "fmt"

// statsPromptTemplate carries the rarity rule table and the strict output
// format the text model must reproduce. The stat ranges are prompt guidance
// only; nothing enforces them programmatically.
const statsPromptTemplate = `You are a Monster Data Generator.
Input: Name, Element, Rarity.
Rules:
- Common:    HP: 80-120  | ATK: 10-30   | DEF: 40-60    | SPD: 30-40
- Rare:      HP: 100-160 | ATK: 30-50   | DEF: 60-80    | SPD: 40-50
- Epic:      HP: 120-200 | ATK: 50-70   | DEF: 80-110   | SPD: 50-60
- Legendary: HP: 150-220 | ATK: 70-100  | DEF: 110-150  | SPD: 60-68
- Mythic:    HP: 200-250 | ATK: 100-130 | DEF: 150-180  | SPD: 68-75
- Sacred:    HP: 250-300 | ATK: 130-150 | DEF: 180-200  | SPD: 75-90

Output Format (Strictly No Markdown/Brackets):
Name: {Name}
Element: {Element}
Rarity: {Rarity}
Stats: {HP} {ATK} {DEF} {SPD}
Move 1: {Move Name} | {Power} | {Accuracy}
Move 2: {Move Name} | {Power} | {Accuracy}
Move 3: {Move Name} | {Power} | {Accuracy}`

// BuildStatsPrompt appends the user input to the fixed rule table. Pure
// string construction, no validation.
func BuildStatsPrompt(name, element, rarity string) string {
	return fmt.Sprintf("%s\n\nUSER INPUT -> Name: %s, Element: %s, Rarity: %s", statsPromptTemplate, name, element, rarity)
}

// BuildImagePrompt builds the secondary prompt for a square, high-resolution
// monster illustration.
func BuildImagePrompt(name, element string) string {
	return fmt.Sprintf("Generate a image of %s %s monster, Quality - 4k, Ratio - 1:1", element, name)
}

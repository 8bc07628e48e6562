package generate

import (
	"fmt"
	"strings"

	"github.com/silaspuma/rogen/pkg/model"
)

// mechanics lists the gameplay systems the script must implement for each
// game type. Injected into the generation prompt.
var mechanics = map[model.GameType]string{
	model.GameTypeAdventure:  "Include combat system, enemy spawning, item collection, level progression, and boss battles",
	model.GameTypePuzzle:     "Implement puzzle mechanics, level difficulty progression, solving checks, and win/lose conditions",
	model.GameTypeRacing:     "Create checkpoint system, lap counting, speed mechanics, collision detection, and leaderboard",
	model.GameTypeSurvival:   "Include resource management, crafting system, health/hunger mechanics, waves of enemies, and base building",
	model.GameTypeShooter:    "Implement shooting mechanics, ammunition system, enemy AI, scoring, and health system",
	model.GameTypeTycoon:     "Create business mechanics, currency system, upgrades, profit generation, and player progression",
	model.GameTypePlatformer: "Include jumping mechanics, platforming challenges, collectibles, and level completion",
	model.GameTypeRPG:        "Create character stats, quest system, inventory, combat, and progression system",
}

func gameTypeMechanics(t model.GameType) string {
	if m, ok := mechanics[t]; ok {
		return m
	}
	return "Include core gameplay mechanics appropriate for this game type"
}

// scriptPrompt asks for a single, complete, directly usable script and
// explicitly forbids conversational wrapping.
func scriptPrompt(req *model.GenerateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert Roblox Lua developer. Generate a complete, functional Lua script for a %s game with a %s theme.\n\n", req.Type, req.Theme)
	fmt.Fprintf(&b, "User's Game Concept:\n%s\n\n", strings.TrimSpace(req.Description))
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString("1. Create a valid Roblox Lua script that can be pasted directly into Roblox Studio\n")
	b.WriteString("2. Include these sections with clear comments:\n")
	b.WriteString("   - Game Configuration (settings, constants)\n")
	b.WriteString("   - Player Management (joining, leaving)\n")
	fmt.Fprintf(&b, "   - Core Game Mechanics (specific to the %s type)\n", req.Type)
	b.WriteString("   - Game Loop (main update logic)\n")
	b.WriteString("   - Cleanup (proper disposal of resources)\n\n")
	b.WriteString("3. The script MUST:\n")
	b.WriteString("   - Be fully functional and error-free\n")
	b.WriteString("   - Include proper comments explaining each section\n")
	b.WriteString("   - Use Roblox API correctly\n")
	b.WriteString("   - Have proper error handling\n")
	b.WriteString("   - Be optimized for performance\n")
	b.WriteString("   - Be ready to use immediately in Roblox Studio\n\n")
	fmt.Fprintf(&b, "4. For a %s game with %s theme, implement specific mechanics:\n", req.Type, req.Theme)
	fmt.Fprintf(&b, "   - %s\n", gameTypeMechanics(req.Type))
	fmt.Fprintf(&b, "   - Visual style: %s\n\n", req.Theme)
	b.WriteString("IMPORTANT: Return ONLY the Lua code, starting with the opening comment and ending with the final comment. No markdown, no explanations, just pure Lua code.")

	return b.String()
}

// titlePrompt asks for a short plain-text name with a tight output budget.
func titlePrompt(description string) string {
	return fmt.Sprintf("Based on this game description, generate a short, catchy, and memorable Roblox game name (2-4 words max). Return ONLY the game name, nothing else.\n\nDescription: %s", strings.TrimSpace(description))
}

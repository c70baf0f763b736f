// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateIntro shows the title panel.
	StateIntro State = iota
	// StateCharacterCreation asks for the hero's name.
	StateCharacterCreation
	// StateMainMenu shows status and offers explore, shop, or quit.
	StateMainMenu
	// StateCombat runs one encounter against a random enemy.
	StateCombat
	// StateShop runs a single shop transaction.
	StateShop
	// StateGameOver announces the hero's defeat.
	StateGameOver
	// StateQuit ends the session.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateCharacterCreation:
		return "character_creation"
	case StateMainMenu:
		return "main_menu"
	case StateCombat:
		return "combat"
	case StateShop:
		return "shop"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Main menu choices.
const (
	choiceExplore = "explore"
	choiceShop    = "shop"
	choiceQuit    = "quit"
)

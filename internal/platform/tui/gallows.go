package tui

// gallowsStages holds the ASCII drawing for each step of the gallows,
// from empty scaffold to complete figure.
var gallowsStages = []string{
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// gallowsArt returns the drawing for the given number of mistakes,
// scaled so that zero mistakes shows the empty scaffold and a full life
// budget shows the complete figure regardless of the configured lives.
func gallowsArt(mistakes, maxLives int) string {
	return gallowsStages[gallowsStage(mistakes, maxLives)]
}

func gallowsStage(mistakes, maxLives int) int {
	last := len(gallowsStages) - 1
	if maxLives <= 0 || mistakes >= maxLives {
		return last
	}
	if mistakes <= 0 {
		return 0
	}
	// Ceiling division so the first mistake always draws something.
	return (mistakes*last + maxLives - 1) / maxLives
}

package tip

import (
	"context"
	"fmt"
	"log"
)

// GenericPrompt asks for a general snake strategy tip
const GenericPrompt = "Give me one short, fun tip or strategy for the classic Snake game."

// FallbackTip is shown whenever the collaborator fails
const FallbackTip = "1. Don't run into the walls or your own body.\n" +
	"2. Keep the snake moving in straight lines when you can.\n" +
	"3. Look ahead to the food and turn early."

// ScorePrompt asks for advice tailored to a finished round
func ScorePrompt(score int) string {
	return fmt.Sprintf("I just played the Snake game and scored %d points. Give me one short piece of advice to do better next time.", score)
}

// Fetch queries c and substitutes FallbackTip on any error
// The second return value reports whether the fallback was used
func Fetch(ctx context.Context, c Client, prompt string) (string, bool) {
	if c == nil {
		return FallbackTip, true
	}
	text, err := c.GetTip(ctx, prompt)
	if err != nil {
		log.Printf("tip unavailable, using fallback: %v", err)
		return FallbackTip, true
	}
	return text, false
}

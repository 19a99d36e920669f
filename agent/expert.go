package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	chat        *genai.Chat
}

// NewAnalyst creates the cost basis analyst. The holdings and gains reports
// are embedded in its system instruction, so it answers from the user's
// actual lots instead of guessing.
func NewAnalyst(holdings, gains string) *Expert {
	instruction := fmt.Sprintf(`
	You are an expert in cost basis accounting for fungible assets.

	The user's lots are tracked last-in first-out: a disposal always consumes
	the most recently acquired lots first. All figures below were computed
	with exact decimal arithmetic, do not recompute them, explain them.

	Current holdings, per asset with their open lots:

	%s

	Realized gains so far:

	%s

	Answer questions about these figures, lot by lot when asked. If the user
	asks for tax advice, remind them you can explain the numbers but a tax
	professional must validate any filing.
	`, holdings, gains)

	return &Expert{
		Name: "Analyst",
		Description: `An expert in cost basis accounting. Knows the user's
		open lots and realized gains and how each disposal was matched.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}

// Start opens the chat session for this expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

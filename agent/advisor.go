// Package agent is the conversational advisor behind the "assist" command.
// It runs a Gemini chat seeded with the state of a portfolio, so the model
// answers questions about the actual holdings instead of generic advice.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model the advisor chats with.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a pragmatic financial assistant for a personal
stock portfolio tracker. The user's portfolio state is given below in
markdown. Answer questions about it concisely, in markdown. You are not a
licensed advisor: for anything that sounds like investment advice, present
options and trade-offs, never instructions.`

// Advisor is one chat session about one portfolio.
type Advisor struct {
	Model   string
	Context string // portfolio state in markdown, injected as system context

	chat *genai.Chat
}

// New creates an advisor for the given portfolio context.
func New(portfolioContext string) *Advisor {
	return &Advisor{
		Model:   DefaultModel,
		Context: portfolioContext,
	}
}

// Start creates the underlying chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
				{Text: a.Context},
			},
		},
	}
	chat, err := client.Chats.Create(ctx, a.Model, config, nil)
	if err != nil {
		return fmt.Errorf("starting advisor chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the model's markdown answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from %s", a.Model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run is the interactive REPL: questions in, rendered answers out. The
// render callback formats markdown for the terminal; questions given
// upfront are consumed before reading from r. 'bye' or EOF ends the
// session.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, w io.Writer, r io.Reader, render func(string) string, questions ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Ask about your portfolio. Type 'bye' to exit.")
	br := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)

		var input string
		if len(questions) > 0 {
			input, questions = questions[0], questions[1:]
			fmt.Fprintln(w, input)
		} else {
			line, err := br.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			input = line
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, render(answer))
	}
}

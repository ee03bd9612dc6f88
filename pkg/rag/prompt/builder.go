package prompt

import (
	"strings"
)

// GroundedBuilder assembles the strict knowledge-base prompt: the model may
// answer only from the retrieved context block, never from its own
// knowledge.
type GroundedBuilder struct {
	context  string
	question string
}

// NewGroundedBuilder creates a builder for one retrieved context block and
// the user's question.
func NewGroundedBuilder(context, question string) *GroundedBuilder {
	return &GroundedBuilder{
		context:  context,
		question: question,
	}
}

// Build creates the full prompt string.
func (b *GroundedBuilder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writeRules(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *GroundedBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("You are a knowledge-base assistant.\n\n")
	prompt.WriteString("Answer ONLY using the provided context.\n\n")
}

func (b *GroundedBuilder) writeRules(prompt *strings.Builder) {
	prompt.WriteString("Rules:\n")
	prompt.WriteString("- Do NOT invent information\n")
	prompt.WriteString("- Do NOT use outside knowledge\n")
	prompt.WriteString("- If the answer is not explicitly written in the context, reply:\n")
	prompt.WriteString("\"I don't have information about that.\"\n")
	prompt.WriteString("- Be concise and clear\n\n")
}

func (b *GroundedBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("CONTEXT:\n")
	prompt.WriteString(b.context)
	prompt.WriteString("\n\n")
}

func (b *GroundedBuilder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("QUESTION:\n")
	prompt.WriteString(b.question)
	prompt.WriteString("\n")
}

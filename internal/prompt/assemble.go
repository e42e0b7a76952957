package prompt

import (
	"fmt"
	"strings"
)

const roleFraming = "You are a professional social media content creator."

const closingDirective = "Include relevant hashtags where appropriate.\n\nFocus on creating content that will drive engagement and shares."

// NoTextFound is the sentinel the extraction prompt asks the backend to
// return for images without visible text. Callers map it to an empty
// result.
const NoTextFound = "No text found in the image."

func platformName(p Platform) string {
	if p == "" {
		return "social media"
	}
	return string(p)
}

// join concatenates prompt sections with blank lines, skipping empty ones
// so an omitted custom instruction leaves no gap.
func join(sections ...string) string {
	parts := sections[:0:0]
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// ForMedia assembles the full instruction prompt for content generated
// from an uploaded image or video. Output is deterministic for identical
// inputs.
func ForMedia(kind string, opts Options) string {
	return join(
		roleFraming,
		fmt.Sprintf("Analyze this %s and create engaging %s content based on what you see.", kind, platformName(opts.Platform)),
		MediaInstruction(kind),
		PlatformInstruction(opts.Platform),
		ToneInstruction(opts.Tone),
		LengthInstruction(opts.LineCount),
		LanguageInstruction(opts.Language),
		CustomInstruction(opts.CustomPrompt),
		closingDirective,
	)
}

// ForText assembles the instruction prompt for content generated from
// caller-provided source text.
func ForText(source string, opts Options) string {
	return join(
		roleFraming,
		fmt.Sprintf("Create engaging %s content based on the following text:\n\n%q", platformName(opts.Platform), source),
		PlatformInstruction(opts.Platform),
		ToneInstruction(opts.Tone),
		LengthInstruction(opts.LineCount),
		LanguageInstruction(opts.Language),
		CustomInstruction(opts.CustomPrompt),
		closingDirective,
	)
}

// ForTextExtraction returns the fixed OCR prompt.
func ForTextExtraction() string {
	return join(
		"Extract all text visible in this image.",
		"Return only the extracted text, without any additional commentary.",
		fmt.Sprintf("If there is no text visible, respond with %q.", NoTextFound),
	)
}

// Window returns the most recent n turns in their original order. It
// never copies more than the history holds.
func Window(history []Turn, n int) []Turn {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

type personaSpec struct {
	preamble     string
	contextLabel string
	closing      string
}

// personas holds the chat preamble table. Unknown persona names fall back
// to the default assistant.
var personas = map[string]personaSpec{
	"assistant": {
		preamble: `You are a helpful AI assistant integrated into a social media content creation app. You can help users with:

1. SOCIAL MEDIA STRATEGY: content planning, platform-specific best practices, engagement strategies, hashtag research, audience growth.
2. CONTENT CREATION: writing tips, creative brainstorming, content ideas and themes, copywriting advice, visual content suggestions.
3. MARKETING & BUSINESS: brand building, marketing strategies, analytics interpretation, competitor analysis, ROI optimization.
4. TECHNICAL HELP: app usage questions, feature explanations, troubleshooting, best practices for tools.
5. GENERAL ASSISTANCE: problem-solving, creative writing, research help, brainstorming, educational content.

GUIDELINES:
- Be conversational, friendly, and helpful
- Provide actionable, practical advice
- Use emojis occasionally to make responses engaging
- Keep responses concise but comprehensive
- Ask follow-up questions when helpful
- Provide examples when relevant
- Be encouraging and supportive`,
		contextLabel: "CONVERSATION CONTEXT:",
		closing:      "Respond as a helpful AI assistant:",
	},
	"jerry": {
		preamble: `You are Jerry, a helpful and friendly AI assistant. You are knowledgeable, conversational, and always ready to help.

Key traits:
- Be helpful and informative
- Use a friendly, conversational tone
- Provide clear, practical answers
- Be concise but thorough
- Use occasional emojis to be engaging (but don't overdo it)`,
		contextLabel: "Recent conversation:",
		closing:      "Respond as Jerry:",
	},
}

// ForChat assembles the chat prompt: persona preamble, the most recent
// window of history rendered as a transcript, and the current message.
func ForChat(persona string, history []Turn, window int, message string) string {
	spec, ok := personas[persona]
	if !ok {
		spec = personas["assistant"]
	}

	var transcript strings.Builder
	for i, turn := range Window(history, window) {
		if i > 0 {
			transcript.WriteByte('\n')
		}
		speaker := "Assistant"
		if turn.Role == "user" {
			speaker = "User"
		}
		transcript.WriteString(speaker)
		transcript.WriteString(": ")
		transcript.WriteString(turn.Content)
	}

	return join(
		spec.preamble,
		spec.contextLabel+"\n"+transcript.String(),
		"Current user message: "+message,
		spec.closing,
	)
}

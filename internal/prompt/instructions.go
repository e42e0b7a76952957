package prompt

import (
	"fmt"
	"strings"
)

// The instruction tables below are pure data with a fallback entry each.
// Unknown values degrade to the fallback rather than failing.

var platformInstructions = map[Platform]string{
	PlatformInstagram: "Create a captivating Instagram caption. Keep it engaging but not too long (max 2 paragraphs). Include 5-7 relevant hashtags at the end.",
	PlatformTwitter:   "Create a concise Twitter/X post. Keep it under 280 characters including hashtags. Be punchy and direct.",
	PlatformFacebook:  "Create an engaging Facebook post. You can be more detailed than Twitter but still conversational. Include 2-3 hashtags if relevant.",
	PlatformLinkedIn:  "Create a professional LinkedIn post. Focus on business value, insights, or professional development. Use a more formal tone and include 2-3 relevant hashtags.",
}

const platformFallback = "Create engaging social media content."

var toneInstructions = map[Tone]string{
	ToneProfessional:  "Use a professional, authoritative tone. Be informative and precise. Avoid slang or overly casual language.",
	ToneCasual:        "Use a casual, conversational tone. Write as if you're talking to a friend. Be relatable and authentic.",
	ToneHumorous:      "Use a humorous, light-hearted tone. Include witty observations or jokes where appropriate. Keep it fun and entertaining.",
	ToneInspirational: "Use an inspirational, motivational tone. Focus on positive messaging, growth, and encouragement. Include an uplifting message or call to action.",
}

const toneFallback = "Use a balanced, engaging tone appropriate for social media."

var mediaInstructions = map[string]string{
	"image": "Analyze the image content, including people, objects, scenery, colors, mood, and any text visible in the image.",
	"video": "Analyze the video content, including any motion, scenes, people, objects, text, or activities shown. Consider the video's mood, setting, and any story it tells.",
}

const mediaFallback = "Analyze the media content and describe what you see."

// PlatformInstruction returns formatting guidance for the target platform.
func PlatformInstruction(p Platform) string {
	if s, ok := platformInstructions[p]; ok {
		return s
	}
	return platformFallback
}

// ToneInstruction returns voice guidance for the requested tone.
func ToneInstruction(t Tone) string {
	if s, ok := toneInstructions[t]; ok {
		return s
	}
	return toneFallback
}

// MediaInstruction returns analysis guidance for the uploaded media kind.
func MediaInstruction(kind string) string {
	if s, ok := mediaInstructions[kind]; ok {
		return s
	}
	return mediaFallback
}

// LengthInstruction maps a requested line count onto one of six fixed
// bands. Total over all integers; non-positive counts fall back to the
// generic band.
func LengthInstruction(lineCount int) string {
	switch {
	case lineCount <= 0:
		return "Create a concise post with about 5-10 lines of content."
	case lineCount == 1:
		return "Create a single-line post that captures the essence of the subject."
	case lineCount <= 5:
		return fmt.Sprintf("Create a very concise post with exactly %d lines of content. Each line should be a separate paragraph.", lineCount)
	case lineCount <= 20:
		return fmt.Sprintf("Create a post with exactly %d lines of content. Each line should be a separate paragraph or point.", lineCount)
	case lineCount <= 100:
		return fmt.Sprintf("Create a detailed post with exactly %d lines of content. Structure it with clear paragraphs, bullet points, or numbered lists to reach exactly %d lines.", lineCount, lineCount)
	default:
		return fmt.Sprintf("Create an extremely detailed and comprehensive post with exactly %d lines of content. Use a combination of paragraphs, bullet points, numbered lists, and other formatting to reach exactly %d lines. This should be an in-depth analysis or story based on the subject.", lineCount, lineCount)
	}
}

// CustomInstruction wraps free-text user directives as a prioritized
// requirement. Blank input yields the empty string and is omitted from the
// assembled prompt.
func CustomInstruction(customPrompt string) string {
	trimmed := strings.TrimSpace(customPrompt)
	if trimmed == "" {
		return ""
	}
	return fmt.Sprintf("IMPORTANT: The user has provided specific instructions for the content. Please prioritize and incorporate these custom requirements:\n\n%q\n\nMake sure to follow these custom instructions while still maintaining the platform-appropriate format.", trimmed)
}

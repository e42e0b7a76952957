// Package prompt deterministically renders generation instructions from
// typed options. Everything here is pure: no network, no state, and every
// input value, including unknown enum values, produces a usable prompt.
package prompt

// Platform is the social network the content targets.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
)

// Tone is the voice the content is written in.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInspirational Tone = "inspirational"
)

// Options selects how generated content is framed. Options are passed by
// value per request and never held as shared state.
type Options struct {
	Platform     Platform
	Tone         Tone
	LineCount    int
	Language     string
	CustomPrompt string
}

// Turn is one prior exchange rendered into a chat prompt.
type Turn struct {
	Role    string
	Content string
}

package ui

import "dragonling/internal/dragon"

// StageEmoji returns the avatar for the dragon's life stage.
func StageEmoji(s dragon.Stage) string {
	switch s {
	case dragon.StageHatchling:
		return "🐣"
	case dragon.StageJuvenile:
		return "🐲"
	case dragon.StageAdult:
		return "🐉"
	default:
		return "🥚"
	}
}

// actionDecor maps the one-shot action cue to a small decoration drawn
// next to the avatar for a single frame.
var actionDecor = map[dragon.Action]string{
	dragon.ActionFeed:   "🍖",
	dragon.ActionWash:   "🫧",
	dragon.ActionPlay:   "🎾",
	dragon.ActionSleep:  "Z z z",
	dragon.ActionHatch:  "✨✨✨",
	dragon.ActionEvolve: "✨🌟✨",
}

// Avatar renders the stage emoji with the current action cue.
func Avatar(s dragon.State) string {
	emoji := StageEmoji(s.Stage)
	if decor, ok := actionDecor[s.Action]; ok {
		return emoji + " " + decor
	}
	return emoji
}

package nav

import "strings"

// Tone is the color family of a method badge.
type Tone string

const (
	ToneGet     Tone = "emerald"
	TonePost    Tone = "sky"
	TonePut     Tone = "amber"
	ToneDelete  Tone = "rose"
	TonePatch   Tone = "orange"
	ToneNeutral Tone = "neutral"
)

var methodTones = map[string]Tone{
	"get":    ToneGet,
	"post":   TonePost,
	"put":    TonePut,
	"delete": ToneDelete,
	"patch":  TonePatch,
}

// MethodTone maps a method to its badge tone, case-insensitively.
func MethodTone(method string) Tone {
	if t, ok := methodTones[strings.ToLower(method)]; ok {
		return t
	}
	return ToneNeutral
}

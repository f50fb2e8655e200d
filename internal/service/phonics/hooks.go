package phonics

import "strings"

// Hook inspects the raw query after resolution and may return a message
// for the caller. Hooks never influence which phoneme is resolved.
type Hook func(rawInput string) *string

const digraphHint = "A digraph is two letters that make one sound. " +
	"Search for the sound itself, for example \"sh\", \"/ch/\" or \"th\"."

// DigraphHint returns a hint when the query mentions the word "digraph".
func DigraphHint(rawInput string) *string {
	if !strings.Contains(strings.ToLower(rawInput), "digraph") {
		return nil
	}
	msg := digraphHint
	return &msg
}

func runHooks(hooks []Hook, rawInput string) *string {
	for _, h := range hooks {
		if msg := h(rawInput); msg != nil {
			return msg
		}
	}
	return nil
}

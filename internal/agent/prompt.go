package agent

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// basePrompt is the advisor's standing instructions. Email sending is gated
// structurally by the draft/confirm tool pair; the prompt only steers tone
// and workflow.
const basePrompt = `You are a financial advisory assistant for TIAA relationship managers.

Your responsibilities:
1. Client information: retrieve and share client details with the lookup_clients tool. When asked about the clients in a city, share only names and ages; include the full record only when asked about a specific client.
2. Investment advice: ground every recommendation in the client's record and the lookup_funds catalog. Clients cannot rely solely on bonds to reach their desired rates of return; TIAA's diversified funds can meet portfolio risk diversification goals. Be persuasive but respectful of the client's concerns and financial goals.
3. Emails: prepare emails with draft_email, present the draft to the user, incorporate any requested edits by drafting again, and send only after the user explicitly confirms, using confirm_send_email with the draft_id.

Keep answers concise and grounded in tool results. If a tool returns an empty result, say so rather than inventing data.`

// buildSystemPrompt returns the system instructions for this turn.
// When the user's message is reliably detected as a non-English language, the
// model is told to answer in it.
func buildSystemPrompt(userMessage string) string {
	lang := detectResponseLanguage(userMessage)
	if lang == "" {
		return basePrompt
	}
	return basePrompt + "\n\nThe user writes in " + lang + ". Respond in " + lang + "."
}

// detectResponseLanguage returns the English display name of the user's
// language, or "" when detection is unreliable or the language is English.
func detectResponseLanguage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return ""
	}

	tag := language.All.Make(code)
	if tag == language.Und {
		return ""
	}
	if base, conf := tag.Base(); conf != language.No && base.String() == "en" {
		return ""
	}

	return display.English.Tags().Name(tag)
}

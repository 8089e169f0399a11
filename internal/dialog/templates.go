package dialog

import (
	"fmt"

	"github.com/fyrsmithlabs/chatterd/internal/entity"
	"github.com/fyrsmithlabs/chatterd/internal/intent"
)

// fallbackResponse covers intents with no template list. With the default
// catalog this is unreachable; it guards custom catalogs.
const fallbackResponse = "I understand, but I'm not sure how to respond to that yet."

// defaultTemplates returns the built-in response catalog. Built once at
// engine construction and shared read-only across all sessions.
func defaultTemplates() map[intent.Intent][]string {
	return map[intent.Intent][]string{
		intent.IntentGreeting: {
			"Hello! How can I help you today?",
			"Hi there! What can I do for you?",
			"Hey! Nice to meet you. How may I assist?",
		},
		intent.IntentFarewell: {
			"Goodbye! Have a great day!",
			"See you later! Take care!",
			"Bye! Feel free to come back anytime!",
		},
		intent.IntentQuestion: {
			"That's a good question. Let me help you with that.",
			"I'll do my best to answer that for you.",
		},
		intent.IntentBookAppointment: {
			"I'd be happy to help you book an appointment. What date and time works for you?",
			"Sure! Let's schedule that. When would you like to come in?",
		},
		intent.IntentCheckWeather: {
			"Let me check the weather for you. Which location are you interested in?",
			"I can help with that! What city's weather would you like to know?",
		},
		intent.IntentOrderFood: {
			"Great! What would you like to order?",
			"I can help you with that. What are you in the mood for?",
		},
		intent.IntentGetHelp: {
			"I'm here to help! I can assist with:\n- Booking appointments\n- Checking weather\n- Ordering food\n- Answering questions\nWhat do you need?",
		},
		intent.IntentUnknown: {
			"I'm not sure I understood that. Could you rephrase?",
			"I didn't quite catch that. Can you try asking in a different way?",
		},
	}
}

// selectTemplate picks a template deterministically by input length. The
// mod-length rule is a deliberate stand-in for randomness: identical-length
// inputs of the same intent always get the same template, which keeps
// responses reproducible.
func selectTemplate(templates []string, text string) string {
	if len(templates) == 0 {
		return fallbackResponse
	}
	return templates[len(text)%len(templates)]
}

// synthesize produces the response for a classified message. For
// slot-sensitive intents the generic template is replaced with confirmed or
// clarifying phrasing, filling missing slots from the session's accumulated
// context data.
func synthesize(templates map[intent.Intent][]string, tag intent.Intent, ents []entity.Entity, contextData map[string]string, text string) string {
	response := selectTemplate(templates[tag], text)

	switch tag {
	case intent.IntentBookAppointment:
		date := slotValue(ents, entity.KindDate, contextData)
		clock := slotValue(ents, entity.KindTime, contextData)
		switch {
		case date != "" && clock != "":
			response = fmt.Sprintf("Perfect! I've noted your appointment for %s at %s. I'll confirm this for you.", date, clock)
		case date != "":
			response = fmt.Sprintf("Great! I see you want an appointment on %s. What time would work for you?", date)
		case clock != "":
			response = fmt.Sprintf("Noted the time as %s. What date would you prefer?", clock)
		}

	case intent.IntentCheckWeather:
		if loc := slotValue(ents, entity.KindLocation, contextData); loc != "" {
			response = fmt.Sprintf("Checking the weather for %s...", loc)
		}
	}

	return response
}

// slotValue resolves a slot from the current message first (first entity of
// the kind, in extraction order), falling back to the value accumulated in
// context data from earlier turns.
func slotValue(ents []entity.Entity, kind entity.Kind, contextData map[string]string) string {
	for _, en := range ents {
		if en.Kind == kind {
			return en.Value
		}
	}
	return contextData[contextKey(kind)]
}

// contextKey is the context-data key an entity kind merges into.
func contextKey(kind entity.Kind) string {
	return "last_" + string(kind)
}

// Package intent provides rule-based intent classification for user messages.
//
// Classification is driven by a fixed catalog of keyword patterns. Each
// intent owns an ordered list of patterns, and each pattern is an ordered
// list of required lowercase words. A pattern only contributes a score when
// every one of its words appears in the tokenized input; satisfied patterns
// score quadratically in their length, with a flat bonus when the words also
// appear as a consecutive run in the original token order.
//
// The recognizer is a pure function of its input: it holds no mutable state,
// is safe for concurrent use, and never fails. Input that satisfies no
// pattern classifies as IntentUnknown.
//
// # Usage
//
//	rec := intent.NewRecognizer()
//	tag := rec.Classify("I want to book an appointment for tomorrow")
//	// tag == intent.IntentBookAppointment
package intent

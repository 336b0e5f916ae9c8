// Package llm provides LLM-backed Yiddish transliteration as an alternative
// to the rule-based engine. It supports OpenAI chat models and Google's
// Gemini; remote calls run behind a circuit breaker so a flapping API does
// not stall batch runs.
package llm

// Package openai implements the ai.Embedder interface against
// OpenAI-compatible embedding APIs using langchaingo.
package openai

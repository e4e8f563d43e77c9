// Package index defines the similarity-index abstraction: nearest-neighbor
// search over stored company embeddings with optional categorical filters.
//
// Production code wires index/pinecone; tests wire index/mock.
package index

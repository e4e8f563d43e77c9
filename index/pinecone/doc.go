// Package pinecone implements the index.Index interface against a
// Pinecone serverless index using the official Go client.
package pinecone

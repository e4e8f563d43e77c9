// Package mock provides a scripted test double for the index package.
package mock
